package content

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/classboard/core"
)

// Kind is the content variant. It determines the table an item lives in.
type Kind int

const (
	Book Kind = iota
	Video
	Course
	Quiz

	numKinds
)

// Kinds lists every variant in merge order.
var Kinds = [...]Kind{Book, Video, Course, Quiz}

var kindInfos = [...]struct{ name, table string }{
	Book:   {name: "book", table: "books"},
	Video:  {name: "video", table: "videos"},
	Course: {name: "course", table: "courses"},
	Quiz:   {name: "quiz", table: "quizzes"},
}

// every Kind must have an entry in kindInfos and Kinds
var (
	_ = [1]struct{}{}[len(kindInfos)-int(numKinds)]
	_ = [1]struct{}{}[len(Kinds)-int(numKinds)]
)

var ErrUnknownKind = errors.New("unknown content kind")

func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindInfos[k].name
}

// Table is the name of the table holding items of this kind.
func (k Kind) Table() string {
	if !k.Valid() {
		return ""
	}
	return kindInfos[k].table
}

// ParseKind accepts the singular ("book") or table ("books") name.
func ParseKind(s string) (Kind, error) {
	s = core.CleanString(s, true /* lower */)
	for _, k := range Kinds {
		if s == kindInfos[k].name || s == kindInfos[k].table {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ErrUnknownKind
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Item is one row of the merged content table.
type Item struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

// UpdateContent defines what information may be provided to modify an existing Item.
type UpdateContent struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=5000"`
	Subject     string `json:"subject" validate:"omitempty,max=100,alphanum_"`
}

func (uc *UpdateContent) Validate(validate *validator.Validate) error {
	uc.Title = core.CleanString(uc.Title)
	uc.Description = core.CleanString(uc.Description)
	uc.Subject = core.CleanString(uc.Subject)
	return validate.Struct(uc)
}

// Listing is the merged content of every kind, most recent first.
// Failed lists the kinds whose fetch failed; they contribute no items.
type Listing struct {
	Items  []Item `json:"items"`
	Failed []Kind `json:"failed"`
}
