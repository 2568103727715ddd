package scraper

// strategy is one attempt at pulling a string out of a result card: a CSS
// selector plus, optionally, the attribute to read instead of text content.
type strategy struct {
	Selector string
	Attr     string
}

// cardSelectors are the candidate markers for a result card, tried in priority
// order. The first one that appears within its wait window is adopted for the
// whole page. The site renames these classes periodically; tolerance beyond
// this list is out of scope.
var cardSelectors = []string{
	`[data-testid="property-card"]`,
	`div[data-testid="card-content"]`,
	`li[data-testid="result-card"]`,
	`.component_property-card`,
}

// Per-field fallback chains. First candidate yielding non-empty text (or
// attribute) wins; an exhausted chain leaves the field absent.
var (
	priceChain = []strategy{
		{Selector: `[data-testid="card-price"]`},
		{Selector: `span[data-label="pc-price"]`},
		{Selector: `.price-wrapper`},
	}
	addressChain = []strategy{
		{Selector: `[data-testid="card-address"]`},
		{Selector: `div[data-label="pc-address"]`},
		{Selector: `.card-address`},
	}
	bedsChain = []strategy{
		{Selector: `[data-testid="property-meta-beds"]`},
		{Selector: `li[data-label="pc-meta-beds"]`},
	}
	bathsChain = []strategy{
		{Selector: `[data-testid="property-meta-baths"]`},
		{Selector: `li[data-label="pc-meta-baths"]`},
	}
	sqftChain = []strategy{
		{Selector: `[data-testid="property-meta-sqft"]`},
		{Selector: `li[data-label="pc-meta-sqft"]`},
	}
	lotSizeChain = []strategy{
		{Selector: `[data-testid="property-meta-lot-size"]`},
		{Selector: `li[data-label="pc-meta-sqftlot"]`},
	}
	imageChain = []strategy{
		{Selector: `img[data-testid="picture-img"]`, Attr: "src"},
		{Selector: `img`, Attr: "src"},
	}
	detailLinkChain = []strategy{
		{Selector: `a[data-testid="card-link"]`, Attr: "href"},
		{Selector: `a`, Attr: "href"},
	}
	propertyTypeChain = []strategy{
		{Selector: `[data-testid="card-description"]`},
		{Selector: `.property-type`},
		{Selector: `.statusText`},
	}
	daysOnMarketChain = []strategy{
		{Selector: `[data-testid="card-banner"]`},
		{Selector: `.js-date-text`},
		{Selector: `.dom-text`},
	}

	// listing id lives on the card root, never on a child
	listingIDAttrs = []string{"data-listing-id", "id"}
)
