package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/agent"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/config"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/llm"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/observability"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/store"
)

// resolveConfig merges the persistent flags with the optional --config file.
// Every command resolves its settings through here so that read-side and
// generation commands always see the same data directory. An explicitly set
// --data-dir wins over the file, which wins over the flag default.
func resolveConfig() (*config.Config, error) {
	cfg := &config.Config{Verbose: flagVerbose}
	if rootCmd.PersistentFlags().Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}
	if cfg.DataDir == "" {
		cfg.DataDir = flagDataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildAgent opens the store and the generative client from flags and
// environment. The returned close function releases the client connection.
func buildAgent(ctx context.Context) (*agent.Agent, func(), error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return nil, nil, fmt.Errorf("no API key: set GOOGLE_API_KEY or GEMINI_API_KEY")
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}

	modelCfg := llm.DefaultConfig()
	if cfg.LiteModel != "" {
		modelCfg = modelCfg.WithModel(llm.TierLite, cfg.LiteModel)
	}
	if cfg.StandardModel != "" {
		modelCfg = modelCfg.WithModel(llm.TierStandard, cfg.StandardModel)
	}
	if cfg.AdvancedModel != "" {
		modelCfg = modelCfg.WithModel(llm.TierAdvanced, cfg.AdvancedModel)
	}

	client, err := llm.NewClient(ctx, modelCfg, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	return agent.New(st, client), func() { _ = client.Close() }, nil
}

// openStore opens the snapshot store alone, for read-side commands that never
// touch the generative service.
func openStore() (*store.Store, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg.DataDir)
}

// printer returns the shared human-readable output writer.
func printer() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}

// writeJSON pretty-prints v to stdout.
func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// readJSONFile decodes a JSON file into out when path is non-empty.
func readJSONFile(path string, out any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
