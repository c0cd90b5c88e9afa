package main

import "fmt"

// Run executes the domains command.
func (c *DomainsCmd) Run(deps *Dependencies) error {
	names := deps.Registry.Names()
	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No domains registered.")
		return nil
	}

	for _, name := range names {
		if !c.Details {
			fmt.Fprintln(deps.Stdout, name)
			continue
		}

		config := deps.Registry.ResolveByName(name)
		if config == nil {
			continue
		}
		loadMore := "-"
		if config.LoadMoreSelector != "" {
			loadMore = config.LoadMoreSelector
		}
		fmt.Fprintf(deps.Stdout, "%s\n  container: %s\n  wait: %s (%s)\n  load more: %s\n",
			config.DomainName,
			config.ArticleContainerSelector,
			config.WaitUntil,
			config.WaitTimeout,
			loadMore,
		)
	}

	return nil
}
