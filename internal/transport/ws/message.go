package ws

import (
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
	viewuc "github.com/kinetic-pages/showdex/internal/usecase/view"
)

// Inbound message types.
const (
	messageInput   = "input"
	messageKey     = "key"
	messageClear   = "clear"
	messageFilters = "filters"
)

// inboundMessage is one client frame. Type selects which fields matter.
type inboundMessage struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Key      string `json:"key,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	Sort     string `json:"sort,omitempty"`
}

// suggestionFrame is the wire form of one typeahead entry.
type suggestionFrame struct {
	Kind       string `json:"kind"`
	Label      string `json:"label"`
	Query      string `json:"query,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

// directiveFrame is one server frame: a projection instruction for the UI.
type directiveFrame struct {
	Type             string            `json:"type"`
	RecordID         string            `json:"record_id,omitempty"`
	IDs              []string          `json:"ids,omitempty"`
	HiddenRecords    []string          `json:"hidden_records,omitempty"`
	HiddenCategories []string          `json:"hidden_categories,omitempty"`
	Query            string            `json:"query,omitempty"`
	Suggestions      []suggestionFrame `json:"suggestions"`
}

func frameFromDirective(d viewuc.Directive) directiveFrame {
	frame := directiveFrame{Type: string(d.Kind())}
	switch d.Kind() {
	case viewuc.KindSelect:
		frame.RecordID = d.RecordID()
	case viewuc.KindResults:
		frame.IDs = d.IDs()
		frame.HiddenRecords = d.HiddenRecords()
		frame.HiddenCategories = d.HiddenCategories()
	case viewuc.KindEmpty:
		frame.Query = d.Query()
	case viewuc.KindSuggestions:
		frame.Suggestions = make([]suggestionFrame, len(d.Suggestions()))
		for i, s := range d.Suggestions() {
			frame.Suggestions[i] = suggestionFrameFrom(s)
		}
	}
	return frame
}

func suggestionFrameFrom(s suggest.Suggestion) suggestionFrame {
	f := suggestionFrame{
		Kind:  string(s.Kind()),
		Label: s.Label(),
	}
	switch s.Kind() {
	case suggest.KindHistory:
		f.Query = s.Query()
	case suggest.KindRecord:
		f.RecordID = s.RecordID()
	case suggest.KindCategory:
		f.CategoryID = s.CategoryID()
	}
	return f
}
