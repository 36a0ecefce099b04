// Package topics provides a pluggable, topic-based help system for Cobra
// CLI applications. Topics are markdown or text files carried in an fs.FS
// (typically embedded in the binary), making the CLI self-documenting.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/taglog/pkg/errors"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	docs         fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions lists the file extensions considered topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content for the terminal.
	// Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a TopicManager reading topics from docs.
func New(docs fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		docs:       docs,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	return tm
}

// scanTopics collects topic files from the docs filesystem.
func (tm *TopicManager) scanTopics() error {
	err := fs.WalkDir(tm.docs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range tm.extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(tm.docs, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:    name,
			Path:    p,
			Content: string(content),
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrTopicScan, "failed to scan help topics")
	}
	return nil
}

// GetTopic retrieves a topic by name. Flag-style names ("--foo") match the
// bare topic name.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	topic, exists := tm.topics[name]
	return topic, exists
}

// ListTopics returns all available topic names
func (tm *TopicManager) ListTopics() []string {
	topics := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		topics = append(topics, name)
	}
	return topics
}

// Initialize installs the topic-aware help command on rootCmd.
func Initialize(rootCmd *cobra.Command, docs fs.FS, opts Options) error {
	tm := New(docs, opts)

	if err := tm.scanTopics(); err != nil {
		return err
	}

	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var completions []string

			completions = append(completions, "topics")

			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}

			completions = append(completions, tm.ListTopics()...)

			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				names := tm.ListTopics()
				if len(names) == 0 {
					fmt.Println("No help topics available.")
					return
				}
				sort.Strings(names)
				fmt.Println("Available help topics:")
				for _, name := range names {
					fmt.Printf("  %s\n", name)
				}
				fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", rootCmd.Name())
				return
			}

			if topic, exists := tm.GetTopic(args[0]); exists {
				fmt.Print(tm.renderer.Render(topic.Content, path.Ext(topic.Path)))
				return
			}

			// Not a topic - fall back to original help
			tm.originalHelp(rootCmd, args)
		},
	}

	// Replace any existing help command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	// Also cover the --help flag path
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, exists := tm.GetTopic(args[0]); exists {
				fmt.Print(tm.renderer.Render(topic.Content, path.Ext(topic.Path)))
				return
			}
		}
		tm.originalHelp(cmd, args)
	})

	return nil
}
