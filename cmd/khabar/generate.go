package main

import (
	"fmt"

	"github.com/gujnews/khabar"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	article, err := deps.Generator.GenerateFromURLs(deps.Ctx, c.Keypoints, c.Source, c.Model)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", khabar.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, article.Title)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, article.Content)
	if article.Warning != "" {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", article.Warning)
	}

	return nil
}
