package merriam

import "encoding/json"

// apiEntry is a single record from the collegiate-style API response.
// The API returns an array of records (one per homograph); only the first
// is used for adaptation.
type apiEntry struct {
	Meta     apiMeta          `json:"meta"`
	Hwi      apiHeadwordInfo  `json:"hwi"`
	Fl       string           `json:"fl"`
	Shortdef []string         `json:"shortdef"`
	Suppl    *apiSupplemental `json:"suppl"`
	Def      []apiDefSection  `json:"def"`
}

// apiMeta carries the compound identifier, e.g. "run:1", a headword plus a
// homograph-disambiguation suffix after the colon.
type apiMeta struct {
	ID string `json:"id"`
}

type apiHeadwordInfo struct {
	Prs []apiPronunciation `json:"prs"`
}

type apiPronunciation struct {
	MW    string   `json:"mw"`
	Sound apiSound `json:"sound"`
}

type apiSound struct {
	Audio string `json:"audio"`
}

// apiSupplemental holds the flat supplemental-examples list, the preferred
// example source when present.
type apiSupplemental struct {
	Examples []apiVerbalIllustration `json:"examples"`
}

type apiVerbalIllustration struct {
	T string `json:"t"`
}

// apiDefSection keeps sseq raw: it is a deeply nested heterogeneous array
// ([["sense", {...}], ...] groups) that is walked stepwise during example
// extraction, and any shape mismatch there must degrade rather than fail
// the whole decode.
type apiDefSection struct {
	Sseq json.RawMessage `json:"sseq"`
}
