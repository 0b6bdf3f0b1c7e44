// Command lingua translates text files line by line through the caching
// pipeline.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/ZaguanLabs/lingua"
	"github.com/ZaguanLabs/lingua/cache"
	"github.com/ZaguanLabs/lingua/provider"
)

// envDefaults are read from LINGUA_* environment variables and act as flag
// defaults.
type envDefaults struct {
	APIKey    string `envconfig:"API_KEY"`
	Model     string `envconfig:"MODEL" default:"gpt-4o-mini"`
	RedisURL  string `envconfig:"REDIS_URL"`
	CacheFile string `envconfig:"CACHE_FILE"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var env envDefaults
	if err := envconfig.Process("lingua", &env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	fs := flag.NewFlagSet("lingua", flag.ContinueOnError)
	fs.SetOutput(stderr)

	from := fs.String("from", "en", "Source language tag")
	to := fs.String("to", "", "Target language tag (e.g., es, ja-JP)")
	textContext := fs.String("context", "ui", "Text context: ui, backend, user_content, system")
	apiKey := fs.String("api-key", env.APIKey, "OpenAI API key (default: LINGUA_API_KEY or OPENAI_API_KEY env)")
	model := fs.String("model", env.Model, "OpenAI model to use")
	cacheSize := fs.Int("cache-size", 1024, "Maximum in-memory cache entries (0 disables the memory tier)")
	cacheTTL := fs.Int("cache-ttl", 0, "Cache TTL in seconds (0 = never expire)")
	redisURL := fs.String("redis", env.RedisURL, "Redis URL for the persistent cache tier")
	cacheFile := fs.String("cache-file", env.CacheFile, "JSON file for the persistent cache tier")
	noProtect := fs.Bool("no-protect", false, "Disable placeholder protection")
	prepare := fs.Bool("prepare", false, "Warm up the language pair and exit")
	ready := fs.Bool("ready", false, "Report readiness for the language pair and exit")
	output := fs.String("o", "", "Output file (default: stdout)")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	quiet := fs.Bool("quiet", false, "Suppress progress logging")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", lingua.Name, lingua.FullVersion())
		if lingua.BuildDate != "unknown" && lingua.BuildDate != "" {
			fmt.Fprintf(stdout, "  built: %s\n", lingua.BuildDate)
		}
		return nil
	}

	if *to == "" {
		fs.Usage()
		return fmt.Errorf("-to is required")
	}

	tc := lingua.TextContext(*textContext)
	if !tc.Valid() {
		return fmt.Errorf("invalid context %q", *textContext)
	}

	logger := zerolog.Nop()
	if !*quiet {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("no API key: set -api-key, LINGUA_API_KEY, or OPENAI_API_KEY")
	}

	delegate := provider.NewOpenAITranslator(provider.OpenAIConfig{
		APIKey: key,
		Model:  *model,
	})

	store, closeStore, err := buildStore(*redisURL, *cacheFile, *cacheTTL)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	policy := cache.Policy{
		MaxMemoryEntries: *cacheSize,
		TTL:              time.Duration(*cacheTTL) * time.Second,
		Persist:          store != nil,
	}

	var translationCache cache.TranslationCache
	if store != nil {
		translationCache = cache.NewTieredCache(policy, store, cache.WithTieredLogger(logger))
	} else {
		translationCache = cache.NewLRUCacheFromPolicy(policy)
	}

	var opts []lingua.Option
	if *noProtect {
		opts = append(opts, lingua.WithoutProtection())
	}

	engine, err := lingua.NewEngine(lingua.EngineConfig{
		SourceLang: *from,
		Target:     lingua.StaticLanguage(*to),
		Delegate:   delegate,
		Cache:      translationCache,
		Options:    opts,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()

	if *ready {
		fmt.Fprintf(stdout, "ready: %v\n", engine.IsReady(ctx))
		return nil
	}

	if *prepare {
		return runPrepare(ctx, engine, stdout)
	}

	lines, inputName, err := readInput(fs.Args())
	if err != nil {
		return err
	}

	logger.Info().
		Str("input", inputName).
		Str("from", *from).
		Str("to", *to).
		Int("lines", len(lines)).
		Msg("translating")

	translated := make([]string, len(lines))
	for i, line := range lines {
		translated[i] = engine.Translate(ctx, line, tc)
	}

	return writeOutput(stdout, *output, *jsonOutput, *from, *to, lines, translated)
}

// buildStore picks the persistent tier: Redis wins over a cache file; neither
// means memory-only.
func buildStore(redisURL, cacheFile string, ttlSeconds int) (cache.Store, func(), error) {
	if redisURL != "" {
		store, err := cache.NewRedisStore(cache.RedisConfig{URL: redisURL, TTL: ttlSeconds})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return store, func() { store.Close() }, nil
	}
	if cacheFile != "" {
		store, err := cache.NewFileStore(cacheFile)
		if err != nil {
			return nil, nil, fmt.Errorf("opening cache file: %w", err)
		}
		return store, nil, nil
	}
	return nil, nil, nil
}

func runPrepare(ctx context.Context, engine *lingua.Engine, stdout io.Writer) error {
	for {
		result := engine.Prepare(ctx)
		switch result.State {
		case lingua.PrepareReady:
			fmt.Fprintln(stdout, "ready")
			return nil
		case lingua.PrepareFailed:
			return fmt.Errorf("preparation failed: %v", result.Err)
		}
		fmt.Fprintf(stdout, "downloading: %.0f%%\n", result.Progress*100)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func readInput(args []string) ([]string, string, error) {
	var reader io.Reader
	inputName := "stdin"

	if len(args) == 0 {
		reader = os.Stdin
	} else {
		f, err := os.Open(args[0]) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return nil, "", fmt.Errorf("reading file: %w", err)
		}
		defer f.Close()
		reader = f
		inputName = args[0]
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("reading input: %w", err)
	}
	return lines, inputName, nil
}

func writeOutput(stdout io.Writer, outputPath string, asJSON bool, from, to string, source, translated []string) error {
	var out io.Writer = stdout
	if outputPath != "" {
		f, err := os.Create(outputPath) // #nosec G304 - path is intentionally user-provided
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if asJSON {
		type line struct {
			Source     string `json:"source"`
			Translated string `json:"translated"`
		}
		payload := struct {
			From  string `json:"from"`
			To    string `json:"to"`
			Lines []line `json:"lines"`
		}{From: from, To: to}
		for i := range source {
			payload.Lines = append(payload.Lines, line{Source: source[i], Translated: translated[i]})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	_, err := fmt.Fprintln(out, strings.Join(translated, "\n"))
	return err
}
