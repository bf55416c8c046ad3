package servecmder

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/babelgateco/babelgate/gateway"
	"github.com/babelgateco/babelgate/pkg/logger"
	"github.com/babelgateco/babelgate/pkg/provider"
)

const serveLongDesc string = `Run the translation gateway server.

Reads configuration from a TOML file when --config is given, applies any
flag overrides on top, and takes the provider credential from the
OPENAI_API_KEY environment variable (a .env file in the working directory
is honored).

Examples:
  babelgate serve
  babelgate serve --listen :9000 --target-lang Spanish
  babelgate serve --config /etc/babelgate/babelgate.toml --cache`

const serveShortDesc string = "Run the translation gateway server"

type serveCommander struct {
	configPath string
	listenAddr string
	model      string
	sourceLang string
	targetLang string
	timeout    time.Duration
	cache      bool
	cachePath  string
	apiKey     string
	debug      bool
}

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to TOML config file")
	cmd.Flags().StringVar(&cmder.listenAddr, "listen", "", "Address to listen on")
	cmd.Flags().StringVar(&cmder.model, "model", "", "Provider model identifier")
	cmd.Flags().StringVar(&cmder.sourceLang, "source-lang", "", "Source language")
	cmd.Flags().StringVar(&cmder.targetLang, "target-lang", "", "Target language")
	cmd.Flags().DurationVar(&cmder.timeout, "timeout", 0, "Outbound provider call deadline")
	cmd.Flags().BoolVar(&cmder.cache, "cache", false, "Enable the translation cache")
	cmd.Flags().StringVar(&cmder.cachePath, "cache-path", "", "Path to SQLite cache file (default: in-memory)")
	cmd.Flags().StringVar(&cmder.apiKey, "api-key", "", "Require this X-API-Key from callers")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *serveCommander) run(cmd *cobra.Command) error {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	config, err := c.buildConfig(cmd)
	if err != nil {
		return err
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	log := logger.NewLogger(c.debug)
	defer log.Sync()

	log.Info("babelgate starting",
		zap.String("listen", config.ListenAddr),
		zap.String("model", config.Model),
		zap.String("source_lang", config.SourceLang),
		zap.String("target_lang", config.TargetLang),
		zap.Bool("cache", config.CacheEnabled),
		zap.Bool("debug", c.debug),
	)
	if config.APIKey != "" {
		log.Info("caller authentication enabled (X-API-Key)")
	}

	client := provider.NewOpenAI(openaiKey)

	g, err := gateway.New(config, client, log)
	if err != nil {
		return fmt.Errorf("failed to create gateway: %w", err)
	}
	defer g.Close()

	return g.Run()
}

// buildConfig layers flag overrides on top of the file (or default) config.
func (c *serveCommander) buildConfig(cmd *cobra.Command) (gateway.Config, error) {
	config := gateway.DefaultConfig()

	if c.configPath != "" {
		var err error
		config, err = gateway.LoadConfig(c.configPath)
		if err != nil {
			return gateway.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("listen") {
		config.ListenAddr = c.listenAddr
	}
	if flags.Changed("model") {
		config.Model = c.model
	}
	if flags.Changed("source-lang") {
		config.SourceLang = c.sourceLang
	}
	if flags.Changed("target-lang") {
		config.TargetLang = c.targetLang
	}
	if flags.Changed("timeout") {
		config.RequestTimeout = gateway.Duration{Duration: c.timeout}
	}
	if flags.Changed("cache") {
		config.CacheEnabled = c.cache
	}
	if flags.Changed("cache-path") {
		config.CachePath = c.cachePath
		config.CacheEnabled = true
	}
	if flags.Changed("api-key") {
		config.APIKey = c.apiKey
	}

	return config, nil
}
