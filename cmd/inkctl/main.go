// Package main is inkctl, the command-line companion to the InkPress
// server. It converts markdown files to block JSON and back, renders
// previews, and pushes frontmatter-annotated posts straight to the blog API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"inkpress/internal/blocks"
	"inkpress/internal/blogapi"
	"inkpress/internal/editor"
	"inkpress/internal/importer"
	"inkpress/internal/preview"
)

const usage = `inkctl — InkPress command line

Usage:
  inkctl convert [-o out.json] <file.md>      markdown to block JSON
  inkctl reconstruct [-o out.md] <file.json>  block JSON to markdown
  inkctl preview [-style name] <file.md>      markdown to preview HTML
  inkctl push [-publish] <file.md>            push a frontmatter post to the blog API

Push reads BLOG_API_URL and BLOG_API_TOKEN from the environment.
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "reconstruct":
		err = runReconstruct(os.Args[2:])
	case "preview":
		err = runPreview(os.Args[2:])
	case "push":
		err = runPush(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Fprint(os.Stderr, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// runConvert parses a markdown file and writes its block JSON.
func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	fs.Parse(args)

	source, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	parsed := blocks.ParseContent(string(source))
	payload, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal blocks: %w", err)
	}
	return writeOutput(*out, append(payload, '\n'))
}

// runReconstruct turns a block JSON file back into markdown.
func runReconstruct(args []string) error {
	fs := flag.NewFlagSet("reconstruct", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	fs.Parse(args)

	source, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	var parsed []blocks.ContentBlock
	if err := json.Unmarshal(source, &parsed); err != nil {
		return fmt.Errorf("decode blocks: %w", err)
	}
	return writeOutput(*out, []byte(blocks.BlocksToMarkdown(parsed)+"\n"))
}

// runPreview renders a markdown file to HTML the way the editor's preview
// pane would show it.
func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	style := fs.String("style", "", "syntax highlighting style")
	fs.Parse(args)

	source, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	html, err := preview.New(*style).Render(string(source))
	if err != nil {
		return err
	}
	return writeOutput(*out, []byte(html))
}

// runPush imports a frontmatter-annotated markdown file and creates or
// updates the post through the blog API.
func runPush(args []string) error {
	fs := flag.NewFlagSet("push", flag.ExitOnError)
	publish := fs.Bool("publish", false, "publish the post after saving")
	timeout := fs.Duration("timeout", 2*time.Minute, "overall request timeout")
	fs.Parse(args)

	path := fs.Arg(0)
	if path == "" {
		return fmt.Errorf("push needs a markdown file")
	}

	draft, err := importer.ParseFile(path)
	if err != nil {
		return err
	}

	baseURL := os.Getenv("BLOG_API_URL")
	if baseURL == "" {
		return fmt.Errorf("BLOG_API_URL is not set")
	}
	client := blogapi.New(blogapi.Config{
		BaseURL: baseURL,
		Token:   os.Getenv("BLOG_API_TOKEN"),
	})
	svc := editor.NewService(client, nil)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	post, err := svc.Submit(ctx, "", draft)
	if err != nil {
		return err
	}
	slog.Info("post saved", "id", post.ID, "title", post.Title)

	if *publish {
		if _, err := svc.Publish(ctx, "", post.ID); err != nil {
			return err
		}
		slog.Info("post published", "id", post.ID)
	}

	fmt.Println(post.ID)
	return nil
}

// readInput reads the named file, or stdin when the name is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes to the named file, or stdout when the name is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
