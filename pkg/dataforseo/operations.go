package dataforseo

import "context"

// SERP fetches Google organic search results for the given keywords. Each
// keyword becomes its own task object.
// Docs: https://docs.dataforseo.com/v3/serp/overview/
func (c *Client) SERP(ctx context.Context, keyword Subject, opts *Options) (Response, error) {
	return c.call(ctx, serpEndpoint, keyword, opts)
}

// SearchVolume fetches Google Ads monthly search volume for the given
// keywords. All keywords travel in a single task object.
// Docs: https://docs.dataforseo.com/v3/keywords_data/google_ads/search_volume/live/
func (c *Client) SearchVolume(ctx context.Context, keyword Subject, opts *Options) (Response, error) {
	return c.call(ctx, searchVolumeEndpoint, keyword, opts)
}

// KeywordsForSite discovers the keywords a site ranks for. A multi-site call
// issues one task object per site within a single request.
// Docs: https://docs.dataforseo.com/v3/keywords_data/google_ads/keywords_for_site/live/
func (c *Client) KeywordsForSite(ctx context.Context, site Subject, opts *Options) (Response, error) {
	return c.call(ctx, keywordsForSiteEndpoint, site, opts)
}

// DomainPages retrieves an overview of the target domain's pages with
// backlink data for each page.
// Docs: https://docs.dataforseo.com/v3/backlinks/domain_pages/live/
func (c *Client) DomainPages(ctx context.Context, domain Subject, opts *Options) (Response, error) {
	return c.call(ctx, domainPagesEndpoint, domain, opts)
}

// DomainPagesSummary retrieves summary backlink metrics for each page of the
// target domain or subdomain.
// Docs: https://docs.dataforseo.com/v3/backlinks/domain_pages_summary/live/
func (c *Client) DomainPagesSummary(ctx context.Context, domain Subject, opts *Options) (Response, error) {
	return c.call(ctx, domainPagesSummaryEndpoint, domain, opts)
}
