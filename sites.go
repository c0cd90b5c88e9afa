package khabar

import "time"

// Built-in site configurations. Selector and keyword values track the
// live markup of each site and are expected to need occasional updates.
var (
	// SandeshConfig covers sandesh.com. Fast table-of-contents style
	// pages; stories can be split across sibling containers sharing a
	// generated article-id class, and pagination hides behind an XPath
	// "load more" trigger.
	SandeshConfig = &DomainConfig{
		DomainName:               "sandesh",
		ArticleContainerSelector: "div.story[class*='article-']",
		ArticleIDPattern:         "article-",
		LoadMoreSelector:         "//*[contains(@class,'py-4') and contains(@class,'font-normal')]",
		AllowedTags:              DefaultAllowedTags(),
		NoiseKeywords: []string{
			"advertisement", "also read", "related articles",
			"share", "follow us", "post a comment",
			"descriptions off", "subtitles", "alternate audio",
			"this is a modal window", "beginning of dialog window",
			"end of dialog window", "આ પણ વાંચો",
		},
		ElementsToRemove: []string{
			".inner_ar",
			".related-content-alsoread",
		},
		MinTextLength:   25,
		WaitTimeout:     3 * time.Second,
		ClickTimeout:    2 * time.Second,
		PageLoadTimeout: 15 * time.Second,
		WaitUntil:       WaitDOMContentLoaded,
	}

	// TV9GujaratiConfig covers tv9gujarati.com. Dynamic content in a
	// single detail container, no pagination helper.
	TV9GujaratiConfig = &DomainConfig{
		DomainName:               "tv9gujarati",
		ArticleContainerSelector: "div.detailBody",
		AllowedTags:              append(DefaultAllowedTags(), "div"),
		NoiseKeywords: []string{
			"advertisement", "also read", "related articles",
			"share", "follow us", "post a comment",
			"આ પણ વાંચો", "વધુ વાંચો",
		},
		ElementsToRemove: []string{
			".trc_rbox_container",
			".ad-container",
			".social-share",
		},
		MinTextLength:   25,
		WaitTimeout:     5 * time.Second,
		ClickTimeout:    2 * time.Second,
		PageLoadTimeout: 15 * time.Second,
		WaitUntil:       WaitDOMContentLoaded,
	}

	// GujaratSamacharConfig covers gujaratsamachar.com. Related-news
	// sidebar cards must be removed before harvesting.
	GujaratSamacharConfig = &DomainConfig{
		DomainName:               "gujaratsamachar",
		ArticleContainerSelector: ".detail-news.article-detail-news",
		AllowedTags:              append(DefaultAllowedTags(), "div"),
		NoiseKeywords: []string{
			"advertisement", "also read", "related articles",
			"share", "follow us", "post a comment",
			"આ પણ વાંચો", "વધુ વાંચો",
		},
		ElementsToRemove: []string{
			".multiple.card",
			".ad-container",
			".social-share",
		},
		MinTextLength:   25,
		WaitTimeout:     5 * time.Second,
		ClickTimeout:    2 * time.Second,
		PageLoadTimeout: 15 * time.Second,
		WaitUntil:       WaitDOMContentLoaded,
	}

	// AajTakConfig covers aajtak.in. Full text hides behind a "read
	// more" click.
	AajTakConfig = &DomainConfig{
		DomainName:               "aajtak",
		ArticleContainerSelector: ".content-area",
		LoadMoreSelector:         ".readmoreAction",
		AllowedTags:              append(DefaultAllowedTags(), "div"),
		NoiseKeywords: []string{
			"advertisement", "also read", "related articles",
			"share", "follow us", "post a comment",
			"આ પણ વાંચો", "વધુ વાંચો",
		},
		ElementsToRemove: []string{
			".ad-container",
			".social-share",
			".tbl-feed-card",
		},
		MinTextLength:   25,
		WaitTimeout:     5 * time.Second,
		ClickTimeout:    2 * time.Second,
		PageLoadTimeout: 15 * time.Second,
		WaitUntil:       WaitDOMContentLoaded,
	}
)

// RegisterBuiltins seeds a registry with the built-in site
// configurations, binding bare and www. hostname variants.
func RegisterBuiltins(r *Registry) error {
	for _, b := range []struct {
		config *DomainConfig
		hosts  []string
	}{
		{SandeshConfig, []string{"sandesh.com", "www.sandesh.com"}},
		{TV9GujaratiConfig, []string{"tv9gujarati.com", "www.tv9gujarati.com"}},
		{GujaratSamacharConfig, []string{"gujaratsamachar.com", "www.gujaratsamachar.com"}},
		{AajTakConfig, []string{"aajtak.in", "www.aajtak.in"}},
	} {
		if err := r.Register(b.config, b.hosts...); err != nil {
			return err
		}
	}
	return nil
}
