// Package search implements the cross-collection keyword search over blogs,
// videos and Q&A. A query is expanded through the synonym lexicon and every
// resulting term is matched as a case-insensitive substring of the searched
// fields. There is no ranking, stemming or fuzzy matching.
package search

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"github.com/elmufurqaan/site/backend/go-services/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result type keys.
const (
	TypeBlogs  = "blogs"
	TypeVideos = "videos"
	TypeQnA    = "qna"
)

var tagFields = []string{"tags", "tags.en", "tags.bn", "tags.ar"}

// target is one searchable collection and the fields matched in it.
type target struct {
	key    string
	col    repository.Collection
	fields []string
}

// Result is the search response.
type Result struct {
	SearchTerm   string              `json:"searchTerm"`
	Synonyms     []string            `json:"synonyms"`
	Results      map[string][]bson.M `json:"results"`
	TotalResults int                 `json:"totalResults"`
}

type Service interface {
	// Search runs query against the collection named by typ, or all of them when typ is empty.
	Search(ctx context.Context, query, typ string) (*Result, error)
}

type service struct {
	lex     *Lexicon
	targets []target
}

// NewService wires the three searchable collections and the lexicon.
func NewService(blogs, videos, qna repository.Collection, lex *Lexicon) Service {
	return &service{
		lex: lex,
		targets: []target{
			{key: TypeBlogs, col: blogs, fields: append([]string{"title", "content"}, tagFields...)},
			{key: TypeVideos, col: videos, fields: append([]string{"title", "description"}, tagFields...)},
			{key: TypeQnA, col: qna, fields: append([]string{"question", "answer"}, tagFields...)},
		},
	}
}

// Filter builds the query matching any of terms in any of fields.
func Filter(fields, terms []string) bson.M {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	rx := primitive.Regex{Pattern: strings.Join(quoted, "|"), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: rx})
	}
	return bson.M{"$or": or}
}

func (s *service) selected(typ string) ([]target, error) {
	if typ == "" {
		return s.targets, nil
	}
	for _, t := range s.targets {
		if t.key == typ {
			return []target{t}, nil
		}
	}
	return nil, apperr.BadRequest("Invalid search type. Must be: blogs, videos, or qna")
}

func (s *service) Search(ctx context.Context, query, typ string) (*Result, error) {
	term := Normalize(query)
	if term == "" {
		return nil, apperr.Validation("Search term is required")
	}
	targets, err := s.selected(strings.TrimSpace(typ))
	if err != nil {
		return nil, err
	}

	synonyms := s.lex.Synonyms(term)
	if len(synonyms) > 0 {
		metrics.SearchSynonymHits.Inc()
	}
	terms := append([]string{term}, synonyms...)

	found := make([][]bson.M, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			docs := []bson.M{}
			if err := t.col.Find(gctx, Filter(t.fields, terms), nil, &docs); err != nil {
				return err
			}
			found[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperr.Internal("Search failed", err).WithOp("search.Search")
	}

	res := &Result{SearchTerm: term, Synonyms: synonyms, Results: make(map[string][]bson.M, len(targets))}
	for i, t := range targets {
		res.Results[t.key] = found[i]
		res.TotalResults += len(found[i])
		metrics.SearchResults.WithLabelValues(t.key).Observe(float64(len(found[i])))
	}
	return res, nil
}
