package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"bias-probing/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the run tables
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	analysisTable := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		model TEXT,
		concept TEXT,
		result TEXT,
		created_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS analysis_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		analysis_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(analysisTable); err != nil {
		return err
	}
	if _, err := db.Exec(errorTable); err != nil {
		return err
	}

	return nil
}

// SaveAnalysis stores one completed analysis run
func SaveAnalysis(result *model.AnalysisResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO analyses (id, model, concept, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		result.ID, result.ModelName, result.Concept, resultJSON, time.Now().UTC())
	return err
}

// SaveAnalysisError records a run-level failure
func SaveAnalysisError(analysisID string, err error) error {
	if err == nil {
		return nil
	}
	_, e := db.Exec(`INSERT INTO analysis_errors (analysis_id, error_message, created_at) VALUES (?, ?, ?)`,
		analysisID, err.Error(), time.Now().UTC())
	return e
}

// ListAnalyses returns summaries of all saved runs, newest first
func ListAnalyses() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, model, concept, created_at FROM analyses ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []map[string]interface{}
	for rows.Next() {
		var id, modelName, concept string
		var createdAt time.Time
		if err := rows.Scan(&id, &modelName, &concept, &createdAt); err != nil {
			return nil, err
		}
		analyses = append(analyses, map[string]interface{}{
			"id":        id,
			"model":     modelName,
			"concept":   concept,
			"createdAt": createdAt,
		})
	}
	return analyses, rows.Err()
}

// GetAnalysis fetches one full saved run by ID
func GetAnalysis(analysisID string) (*model.AnalysisResult, error) {
	var resultJSON string
	err := db.QueryRow(`SELECT result FROM analyses WHERE id = ?`, analysisID).Scan(&resultJSON)
	if err != nil {
		return nil, err
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteAnalysis removes a saved run and its recorded errors
func DeleteAnalysis(analysisID string) error {
	if _, err := db.Exec(`DELETE FROM analysis_errors WHERE analysis_id = ?`, analysisID); err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM analyses WHERE id = ?`, analysisID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
