package provider

// Protocol selects the normalization path for an upstream API
type Protocol string

const (
	// ProtocolChat is the chat-completion shape: system+user messages,
	// choices[].message.content in the response.
	ProtocolChat Protocol = "chat"
	// ProtocolCompletion is the single-shot completion shape: a bare
	// prompt in, a .completion string out.
	ProtocolCompletion Protocol = "completion"
	// ProtocolTextGeneration is the hosted-inference shape: inputs in,
	// [].generated_text out.
	ProtocolTextGeneration Protocol = "text-generation"
)

// Provider names used as credential map keys
const (
	ProviderOpenAI      = "openai"
	ProviderAnthropic   = "anthropic"
	ProviderHuggingFace = "huggingface"
)

// AdapterConfig describes how to reach one upstream model: where, as what
// upstream model name, and through which protocol normalization path
type AdapterConfig struct {
	Provider  string   `json:"provider"`
	ModelName string   `json:"modelName"`
	Endpoint  string   `json:"endpoint"`
	Protocol  Protocol `json:"protocol"`
}

// Registry maps caller-facing model identifiers to adapter configs.
// It is a constructed value, not package state, so tests can inject
// registries that point at fake upstreams.
type Registry map[string]AdapterConfig

// NewRegistry returns the default model table
func NewRegistry() Registry {
	return Registry{
		"gpt-4o": {
			Provider:  ProviderOpenAI,
			ModelName: "gpt-4o",
			Endpoint:  "https://api.openai.com/v1/chat/completions",
			Protocol:  ProtocolChat,
		},
		"gpt-4o-mini": {
			Provider:  ProviderOpenAI,
			ModelName: "gpt-4o-mini",
			Endpoint:  "https://api.openai.com/v1/chat/completions",
			Protocol:  ProtocolChat,
		},
		"gpt-o1-preview": {
			Provider:  ProviderOpenAI,
			ModelName: "o1-preview",
			Endpoint:  "https://api.openai.com/v1/chat/completions",
			Protocol:  ProtocolChat,
		},
		"gpt-o1-mini": {
			Provider:  ProviderOpenAI,
			ModelName: "o1-mini",
			Endpoint:  "https://api.openai.com/v1/chat/completions",
			Protocol:  ProtocolChat,
		},
		"claude-3-5-sonnet": {
			Provider:  ProviderAnthropic,
			ModelName: "claude-3.5-sonnet",
			Endpoint:  "https://api.anthropic.com/v1/complete",
			Protocol:  ProtocolCompletion,
		},
		"mistral-7b": {
			Provider:  ProviderHuggingFace,
			ModelName: "mistralai/Mistral-7B-Instruct-v0.2",
			Endpoint:  "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2",
			Protocol:  ProtocolTextGeneration,
		},
		"llama-3-8b": {
			Provider:  ProviderHuggingFace,
			ModelName: "meta-llama/Meta-Llama-3-8B-Instruct",
			Endpoint:  "https://api-inference.huggingface.co/models/meta-llama/Meta-Llama-3-8B-Instruct",
			Protocol:  ProtocolTextGeneration,
		},
	}
}
