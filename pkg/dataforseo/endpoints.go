package dataforseo

// batching describes how a multi-subject call maps onto task objects.
type batching int

const (
	// batchPerSubject issues one task object per subject in a single request.
	batchPerSubject batching = iota
	// batchSubjectList issues one task object carrying all subjects as a list.
	batchSubjectList
)

// endpoint describes one DataForSEO endpoint family: its live, task_post and
// task_get paths, the field name the subject is sent under, how subjects are
// batched, which modeled parameters apply, and the API defaults the wrapper
// fills in. The table is read-only and never mutated after init.
type endpoint struct {
	name          string
	livePath      string
	taskPostPath  string
	taskGetPath   string // task id is appended as the final path segment
	subjectField  string
	batch         batching
	wantsLocation bool
	wantsDates    bool
	defaults      map[string]any
}

var (
	serpEndpoint = endpoint{
		name:          "serp",
		livePath:      "serp/google/organic/live/advanced",
		taskPostPath:  "serp/google/organic/task_post",
		taskGetPath:   "serp/google/organic/task_get/advanced/",
		subjectField:  "keyword",
		batch:         batchPerSubject,
		wantsLocation: true,
		defaults: map[string]any{
			"language_code": "en",
			"device":        "desktop",
			"os":            "windows",
			"depth":         100,
		},
	}

	searchVolumeEndpoint = endpoint{
		name:          "msv",
		livePath:      "keywords_data/google_ads/search_volume/live",
		taskPostPath:  "keywords_data/google_ads/search_volume/task_post",
		taskGetPath:   "keywords_data/google_ads/search_volume/task_get/",
		subjectField:  "keywords",
		batch:         batchSubjectList,
		wantsLocation: true,
		wantsDates:    true,
		defaults: map[string]any{
			"language_code": "en",
		},
	}

	keywordsForSiteEndpoint = endpoint{
		name:          "keywords_for_site",
		livePath:      "keywords_data/google_ads/keywords_for_site/live",
		taskPostPath:  "keywords_data/google_ads/keywords_for_site/task_post",
		taskGetPath:   "keywords_data/google_ads/keywords_for_site/task_get/",
		subjectField:  "target",
		batch:         batchPerSubject,
		wantsLocation: true,
		wantsDates:    true,
	}

	domainPagesEndpoint = endpoint{
		name:         "domain_pages",
		livePath:     "backlinks/domain_pages/live",
		taskPostPath: "backlinks/domain_pages/task_post",
		taskGetPath:  "backlinks/domain_pages/task_get/",
		subjectField: "target",
		batch:        batchPerSubject,
	}

	domainPagesSummaryEndpoint = endpoint{
		name:         "domain_pages_summary",
		livePath:     "backlinks/domain_pages_summary/live",
		taskPostPath: "backlinks/domain_pages_summary/task_post",
		taskGetPath:  "backlinks/domain_pages_summary/task_get/",
		subjectField: "target",
		batch:        batchPerSubject,
	}
)

// endpoints lists every supported endpoint family.
var endpoints = []endpoint{
	serpEndpoint,
	searchVolumeEndpoint,
	keywordsForSiteEndpoint,
	domainPagesEndpoint,
	domainPagesSummaryEndpoint,
}
