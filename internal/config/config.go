package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// BlogDir is the directory holding the blog's markdown posts
	BlogDir string
	// AuthorName is inserted into posts that carry no author field
	AuthorName string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("blog.dir", ".")
	viper.SetDefault("blog.author", "Predrag Tasevski")
	viper.SetDefault("jsonoutputdir", "./json/")

	// Get values from viper
	BlogDir = viper.GetString("blog.dir")
	AuthorName = viper.GetString("blog.author")
}

// SetBlogDir sets the post directory
func SetBlogDir(dir string) {
	BlogDir = dir
}

// SetAuthorName sets the author inserted into authorless posts
func SetAuthorName(name string) {
	AuthorName = name
}
