package main

import (
	"fmt"

	"github.com/gujnews/khabar"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	content, err := deps.Extractor.ExtractArticle(deps.Ctx, khabar.ExtractRequest{
		URL:        c.URL,
		DomainName: c.Domain,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", khabar.ErrorMessage(err))
		return err
	}

	if content == "" {
		fmt.Fprintf(deps.Stderr, "no article content found at %s\n", c.URL)
		return khabar.Errorf(khabar.ENOTFOUND, "no article content found at %s", c.URL)
	}

	fmt.Fprintln(deps.Stdout, content)
	return nil
}
