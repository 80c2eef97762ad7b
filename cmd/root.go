package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/ptasevski/blogtidy/cmd/convert"
	"github.com/ptasevski/blogtidy/cmd/tags"
	"github.com/ptasevski/blogtidy/internal/config"
	"github.com/spf13/viper"
)

var (
	convertPosts      = convert.ConvertPosts
	normalizePostTags = tags.NormalizePostTags
)

// CLI represents the complete command structure for the blogtidy application
type CLI struct {
	// Global flags
	Author  string `help:"Author name inserted into posts that carry no author field"`
	Index   bool   `help:"Update the SQLite post index after a run" default:"false"`
	IndexDB string `help:"Path to the SQLite post index database" default:"./posts.db"`

	Convert ConvertCmd `cmd:"" help:"Convert .mdx drafts into dated .md posts"`
	Tags    TagsCmd    `cmd:"" help:"Normalize tags in post front matter"`
}

// ConvertCmd represents the convert command
type ConvertCmd struct {
	Dir        string `short:"d" help:"Directory containing the posts (defaults to blog.dir from config)"`
	JSON       bool   `help:"Write the run report to JSON format"`
	JSONOutput string `help:"Path to JSON report file (defaults to json/convert.json)"`
}

// TagsCmd represents the tags command
type TagsCmd struct {
	Dir        string `short:"d" help:"Directory containing the posts (defaults to blog.dir from config)"`
	JSON       bool   `help:"Write the run report to JSON format"`
	JSONOutput string `help:"Path to JSON report file (defaults to json/tags.json)"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("blogtidy"),
		kong.Description("Maintenance tooling for a personal blog's markdown posts."),
		kong.UsageOnError(),
	)

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("blog.dir", ".")
	viper.SetDefault("blog.author", "Predrag Tasevski")
	viper.SetDefault("jsonoutputdir", "./json/")

	// Index defaults
	viper.SetDefault("index.enabled", false)
	viper.SetDefault("index.dbfile", "./posts.db")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("blog.author", "BLOG_AUTHOR"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Running on defaults is the normal case
			slog.Debug("No config file found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	if cli.Author != "" {
		config.SetAuthorName(cli.Author)
	}

	// Update index config
	viper.Set("index.enabled", cli.Index)
	viper.Set("index.dbfile", cli.IndexDB)
}

// indexDBFile returns the post index path, or empty when indexing is off.
func indexDBFile() string {
	if !viper.GetBool("index.enabled") {
		return ""
	}
	return viper.GetString("index.dbfile")
}

// jsonReportPath resolves the report path: explicit flag first, then the
// configured output directory.
func jsonReportPath(flagValue, name string) string {
	if flagValue != "" {
		return flagValue
	}
	return filepath.Join(viper.GetString("jsonoutputdir"), name)
}

// Run methods for each command

func (c *ConvertCmd) Run() error {
	// Read from config if value not provided via flag
	dir := c.Dir
	if dir == "" {
		dir = config.BlogDir
	}

	opts := convert.Options{
		Dir:        dir,
		Author:     config.AuthorName,
		WriteJSON:  c.JSON,
		JSONOutput: jsonReportPath(c.JSONOutput, "convert.json"),
		IndexDB:    indexDBFile(),
	}

	_, err := convertPosts(opts)
	return err
}

func (t *TagsCmd) Run() error {
	// Read from config if value not provided via flag
	dir := t.Dir
	if dir == "" {
		dir = config.BlogDir
	}

	opts := tags.Options{
		Dir:        dir,
		WriteJSON:  t.JSON,
		JSONOutput: jsonReportPath(t.JSONOutput, "tags.json"),
		IndexDB:    indexDBFile(),
	}

	_, err := normalizePostTags(opts)
	return err
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
