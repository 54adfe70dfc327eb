package llm

// ModelRecommendation describes one locally runnable model, with both its
// Ollama tag and GGUF file name.
type ModelRecommendation struct {
	Name        string
	Ollama      string
	GGUF        string
	Size        string
	SizeGB      float64
	Description string
}

// Thinking tiers, in display order.
const (
	TierQuickThink = "quick_think"
	TierDeepThink  = "deep_think"
)

// recommendedModels32GB is a process-wide static table sized for a 32 GB
// host. Initialized once, never mutated at runtime.
var recommendedModels32GB = map[string][]ModelRecommendation{
	TierQuickThink: {
		{
			Name:        "Qwen3-8B-Q4_K_M",
			Ollama:      "qwen3:8b",
			GGUF:        "Qwen3-8B-Q4_K_M.gguf",
			Size:        "~5 GB",
			SizeGB:      5.0,
			Description: "Fast 8B model, strong tool-calling, ideal for analyst agents",
		},
		{
			Name:        "Qwen3-4B-Q4_K_M",
			Ollama:      "qwen3:4b",
			GGUF:        "Qwen3-4B-Q4_K_M.gguf",
			Size:        "~3 GB",
			SizeGB:      3.0,
			Description: "Ultra-light 4B model for budget setups",
		},
	},
	TierDeepThink: {
		{
			Name:        "Qwen3-30B-A3B-Q4_K_M",
			Ollama:      "qwen3:30b-a3b",
			GGUF:        "Qwen3-30B-A3B-Q4_K_M.gguf",
			Size:        "~18 GB",
			SizeGB:      18.0,
			Description: "MoE 30B model (only 3B active), excellent reasoning at low memory cost",
		},
		{
			Name:        "Qwen3-14B-Q4_K_M",
			Ollama:      "qwen3:14b",
			GGUF:        "Qwen3-14B-Q4_K_M.gguf",
			Size:        "~9 GB",
			SizeGB:      9.0,
			Description: "Dense 14B model, strong reasoning for mid-range setups",
		},
	},
}

// Recommendations filters the static table down to models that fit within
// the given RAM, keeping a 20% headroom for the rest of the process.
func Recommendations(availableRAMGB float64) map[string][]ModelRecommendation {
	result := map[string][]ModelRecommendation{
		TierQuickThink: {},
		TierDeepThink:  {},
	}
	for tier, list := range recommendedModels32GB {
		for _, rec := range list {
			if rec.SizeGB <= availableRAMGB*0.8 {
				result[tier] = append(result[tier], rec)
			}
		}
	}
	return result
}
