package cmd

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bizradar/bizradar/internal/contacts"
	"github.com/bizradar/bizradar/internal/enrich"
	"github.com/bizradar/bizradar/internal/export"
	"github.com/bizradar/bizradar/internal/keyword"
	"github.com/bizradar/bizradar/internal/logger"
	"github.com/bizradar/bizradar/internal/news"
	"github.com/bizradar/bizradar/internal/secrets"
	"github.com/bizradar/bizradar/internal/similar"
	"github.com/bizradar/bizradar/internal/webtext"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "bizradar"

	defaultUserAgent = "bizradar/1.0 (+https://github.com/bizradar/bizradar)"
)

type Config struct {
	UserAgent string          `mapstructure:"user-agent"`
	ExportDir string          `mapstructure:"export-dir"`
	Keywords  *KeywordsConfig `mapstructure:"keywords"`
	Scoring   *ScoringConfig  `mapstructure:"scoring"`
	Secrets   *SecretsConfig  `mapstructure:"secrets"`
}

type KeywordsConfig struct {
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
}

type ScoringConfig struct {
	Threshold     int     `mapstructure:"threshold"`
	FuzzyRatio    float64 `mapstructure:"fuzzy-ratio"`
	SnippetRadius int     `mapstructure:"snippet-radius"`
}

type SecretsConfig struct {
	HunterAPIKeyFile   string `mapstructure:"hunter-api-key-file"`
	GoogleAPIKeyFile   string `mapstructure:"google-api-key-file"`
	GoogleCSEID        string `mapstructure:"google-cse-id"`
	GoogleKGAPIKeyFile string `mapstructure:"google-kg-api-key-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "bizradar is a cli for prospecting companies: industry, peers, contacts, news, SWOT and market maps",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envBindings := map[string]string{
		"secrets.hunter-api-key-file":    "HUNTER_API_KEY_FILE",
		"secrets.google-api-key-file":    "GOOGLE_API_KEY_FILE",
		"secrets.google-cse-id":          "GOOGLE_CSE_ID",
		"secrets.google-kg-api-key-file": "GOOGLE_KG_API_KEY_FILE",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is bizradar.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// Every command works with built-in defaults, so a missing config
	// file is fine. A present but broken one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.ExportDir == "" {
		config.ExportDir = export.DefaultDir
	}
	if config.Keywords == nil {
		config.Keywords = &KeywordsConfig{}
	}
	if config.Scoring == nil {
		config.Scoring = &ScoringConfig{}
	}
	if config.Secrets == nil {
		config.Secrets = &SecretsConfig{}
	}

	return config, nil
}

// radar bundles the logger, config and resolved API keys every
// subcommand needs.
type radar struct {
	ctx    context.Context
	logger *zap.Logger
	config *Config

	hunterKey string
	googleKey string
	cseID     string
	kgKey     string
}

// setup builds the shared command context. Errors here are fatal for
// every subcommand, so it exits through the logger directly.
func setup(ctx context.Context) *radar {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zl.Fatal("getting a config", zap.Error(err))
	}

	r := &radar{
		ctx:    ctx,
		logger: zl,
		config: config,
	}

	r.hunterKey = loadOptionalKey(zl, "hunter api key", config.Secrets.HunterAPIKeyFile)
	r.googleKey = loadOptionalKey(zl, "google api key", config.Secrets.GoogleAPIKeyFile)
	r.cseID = config.Secrets.GoogleCSEID
	r.kgKey = loadOptionalKey(zl, "google knowledge graph api key", config.Secrets.GoogleKGAPIKeyFile)

	return r
}

// loadOptionalKey resolves a key file that features can live without.
// A configured but unreadable file is a hard error.
func loadOptionalKey(zl *zap.Logger, name, file string) string {
	key, err := secrets.LoadOptional(secrets.Source{Name: name, File: file})
	if err != nil {
		zl.Fatal("loading secret", zap.String("secret", name), zap.Error(err))
	}
	return key
}

func (r *radar) web() *webtext.Client {
	return webtext.New(r.ctx, r.logger, r.config.UserAgent)
}

func (r *radar) enricher() *enrich.Enricher {
	return enrich.New(r.ctx, r.logger, r.kgKey, r.config.UserAgent)
}

func (r *radar) similarFinder() *similar.Finder {
	return similar.New(r.ctx, r.logger, r.config.UserAgent)
}

func (r *radar) contactsFinder() *contacts.Finder {
	var hunter *contacts.HunterClient
	if r.hunterKey != "" {
		hunter = contacts.NewHunterClient(r.ctx, r.logger, r.hunterKey, r.config.UserAgent)
	}
	return contacts.NewFinder(r.web(), hunter, r.logger)
}

func (r *radar) newsScanner() *news.Scanner {
	return news.NewScanner(r.ctx, r.logger, r.googleKey, r.cseID, r.config.UserAgent)
}

func (r *radar) scorer() *keyword.Scorer {
	s := keyword.NewScorer()
	if r.config.Scoring.FuzzyRatio > 0 {
		s.FuzzyRatio = r.config.Scoring.FuzzyRatio
	}
	if r.config.Scoring.SnippetRadius > 0 {
		s.SnippetRadius = r.config.Scoring.SnippetRadius
	}
	return s
}

func (r *radar) exporter() *export.Writer {
	return export.NewWriter(r.config.ExportDir)
}

func addCompanyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("company", "c", "", "company name (e.g. 'Ford Motor Company')")
	cmd.MarkFlagRequired("company")
}

func companyArg(cmd *cobra.Command) string {
	company, _ := cmd.Flags().GetString("company")
	return strings.TrimSpace(company)
}

// slug turns a company name into a safe file basename.
func slug(company string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(company)), " ", "_")
}
