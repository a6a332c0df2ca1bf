package repository

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is an in-process Collection used by tests and by the
// server when no MongoDB is configured. It evaluates the subset of the query
// language the modules use: equality on (dotted) fields with array
// membership, $or, $and, $in, $nin, $ne, $eq, $exists, regular expressions,
// and $set updates.
type MemoryCollection struct {
	name string
	mu   sync.RWMutex
	docs []bson.M // insertion order
}

func NewMemoryCollection(name string) *MemoryCollection {
	return &MemoryCollection{name: name}
}

func (m *MemoryCollection) Name() string { return m.name }

// toDoc round-trips v through BSON so stored values have canonical driver types.
func toDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// canon converts a single value to the representation it has after storage.
func canon(v interface{}) (interface{}, error) {
	d, err := toDoc(bson.M{"v": v})
	if err != nil {
		return nil, err
	}
	return d["v"], nil
}

func decodeOne(doc bson.M, result interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, result)
}

func decodeAll(docs []bson.M, results interface{}) error {
	if docs == nil {
		docs = []bson.M{}
	}
	raw, err := bson.Marshal(bson.M{"v": docs})
	if err != nil {
		return err
	}
	return bson.Raw(raw).Lookup("v").Unmarshal(results)
}

func (m *MemoryCollection) Find(ctx context.Context, filter bson.M, opts *FindOptions, results interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matched, err := m.match(filter)
	if err != nil {
		return err
	}
	if opts != nil {
		if opts.Sort != "" {
			sortDocs(matched, opts.Sort, opts.Descending)
		}
		if opts.Skip > 0 {
			if opts.Skip >= int64(len(matched)) {
				matched = nil
			} else {
				matched = matched[opts.Skip:]
			}
		}
		if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
			matched = matched[:opts.Limit]
		}
	}
	return decodeAll(matched, results)
}

func (m *MemoryCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, err := m.first(filter)
	if err != nil {
		return err
	}
	if i < 0 {
		return ErrNotFound
	}
	return decodeOne(m.docs[i], result)
}

func (m *MemoryCollection) InsertOne(ctx context.Context, doc interface{}) (string, error) {
	d, err := toDoc(doc)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := d["_id"]; !ok {
		d["_id"] = primitive.NewObjectID()
	}
	if m.indexOfID(d["_id"]) >= 0 {
		return "", fmt.Errorf("E11000 duplicate key error collection: %s _id: %v", m.name, d["_id"])
	}
	m.docs = append(m.docs, d)
	return IDString(d["_id"]), nil
}

func (m *MemoryCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (UpdateResult, error) {
	set, err := setFields(update)
	if err != nil {
		return UpdateResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.first(filter)
	if err != nil || i < 0 {
		return UpdateResult{}, err
	}
	before, err := toDoc(m.docs[i])
	if err != nil {
		return UpdateResult{}, err
	}
	for path, v := range set {
		setPath(m.docs[i], path, v)
	}
	res := UpdateResult{MatchedCount: 1}
	if !reflect.DeepEqual(before, m.docs[i]) {
		res.ModifiedCount = 1
	}
	return res, nil
}

func (m *MemoryCollection) ReplaceOne(ctx context.Context, filter bson.M, doc interface{}, upsert bool) (UpdateResult, error) {
	d, err := toDoc(doc)
	if err != nil {
		return UpdateResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.first(filter)
	if err != nil {
		return UpdateResult{}, err
	}
	if i >= 0 {
		d["_id"] = m.docs[i]["_id"]
		res := UpdateResult{MatchedCount: 1}
		if !reflect.DeepEqual(d, m.docs[i]) {
			res.ModifiedCount = 1
		}
		m.docs[i] = d
		return res, nil
	}
	if !upsert {
		return UpdateResult{}, nil
	}
	if _, ok := d["_id"]; !ok {
		if id, ok := filter["_id"]; ok && !isOperatorDoc(id) {
			cid, err := canon(id)
			if err != nil {
				return UpdateResult{}, err
			}
			d["_id"] = cid
		} else {
			d["_id"] = primitive.NewObjectID()
		}
	}
	m.docs = append(m.docs, d)
	return UpdateResult{UpsertedID: IDString(d["_id"])}, nil
}

func (m *MemoryCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.first(filter)
	if err != nil || i < 0 {
		return 0, err
	}
	m.docs = append(m.docs[:i], m.docs[i+1:]...)
	return 1, nil
}

func (m *MemoryCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := make([]bson.M, 0, len(m.docs))
	var n int64
	for _, d := range m.docs {
		ok, err := matches(d, filter)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
			continue
		}
		kept = append(kept, d)
	}
	m.docs = kept
	return n, nil
}

func (m *MemoryCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matched, err := m.match(filter)
	return int64(len(matched)), err
}

// match returns the matching documents in insertion order. Caller holds the lock.
func (m *MemoryCollection) match(filter bson.M) ([]bson.M, error) {
	var out []bson.M
	for _, d := range m.docs {
		ok, err := matches(d, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *MemoryCollection) first(filter bson.M) (int, error) {
	for i, d := range m.docs {
		ok, err := matches(d, filter)
		if err != nil {
			return -1, err
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}

func (m *MemoryCollection) indexOfID(id interface{}) int {
	for i, d := range m.docs {
		if reflect.DeepEqual(d["_id"], id) {
			return i
		}
	}
	return -1
}

func setFields(update bson.M) (bson.M, error) {
	out := bson.M{}
	for op, v := range update {
		if op != "$set" {
			return nil, fmt.Errorf("memory collection: unsupported update operator %q", op)
		}
		fields, ok := asMap(v)
		if !ok {
			return nil, fmt.Errorf("memory collection: $set expects a document")
		}
		for k, fv := range fields {
			cv, err := canon(fv)
			if err != nil {
				return nil, err
			}
			out[k] = cv
		}
	}
	return out, nil
}

func setPath(doc bson.M, path string, v interface{}) {
	parts := strings.Split(path, ".")
	cur := doc
	for _, p := range parts[:len(parts)-1] {
		next, ok := asMap(cur[p])
		if !ok {
			next = bson.M{}
		}
		cur[p] = next
		cur = next
	}
	cur[parts[len(parts)-1]] = v
}

func asMap(v interface{}) (bson.M, bool) {
	switch t := v.(type) {
	case primitive.M:
		return t, true
	case map[string]interface{}:
		return bson.M(t), true
	case primitive.D:
		return t.Map(), true
	}
	return nil, false
}

func isOperatorDoc(v interface{}) bool {
	m, ok := asMap(v)
	if !ok || len(m) == 0 {
		return false
	}
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return false
		}
	}
	return true
}

// lookup resolves a dotted path. Arrays met mid-path fan out over their
// document elements, as the store does for "tags.en" on an array of documents.
func lookup(doc interface{}, path string) (interface{}, bool) {
	cur := doc
	parts := strings.Split(path, ".")
	for i, p := range parts {
		switch t := cur.(type) {
		case primitive.A:
			rest := strings.Join(parts[i:], ".")
			var vals primitive.A
			for _, el := range t {
				if v, ok := lookup(el, rest); ok {
					vals = append(vals, v)
				}
			}
			return vals, len(vals) > 0
		default:
			m, ok := asMap(cur)
			if !ok {
				return nil, false
			}
			v, ok := m[p]
			if !ok {
				return nil, false
			}
			cur = v
		}
	}
	return cur, true
}

func matches(doc bson.M, filter bson.M) (bool, error) {
	for key, cond := range filter {
		switch key {
		case "$or", "$and":
			subs, err := subFilters(cond)
			if err != nil {
				return false, err
			}
			want := key == "$and"
			result := want
			for _, sub := range subs {
				ok, err := matches(doc, sub)
				if err != nil {
					return false, err
				}
				if ok != want {
					result = !want
					break
				}
			}
			if !result {
				return false, nil
			}
		default:
			if strings.HasPrefix(key, "$") {
				return false, fmt.Errorf("memory collection: unsupported query operator %q", key)
			}
			val, found := lookup(doc, key)
			ok, err := matchCond(val, found, cond)
			if err != nil || !ok {
				return false, err
			}
		}
	}
	return true, nil
}

func subFilters(v interface{}) ([]bson.M, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("memory collection: logical operator expects an array")
	}
	out := make([]bson.M, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		m, ok := asMap(rv.Index(i).Interface())
		if !ok {
			return nil, fmt.Errorf("memory collection: logical operator expects documents")
		}
		out = append(out, m)
	}
	return out, nil
}

func matchCond(val interface{}, found bool, cond interface{}) (bool, error) {
	switch c := cond.(type) {
	case primitive.Regex:
		return matchRegex(val, c)
	}
	if isOperatorDoc(cond) {
		ops, _ := asMap(cond)
		for op, arg := range ops {
			ok, err := matchOperator(val, found, op, arg)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
	return matchEq(val, found, cond)
}

func matchOperator(val interface{}, found bool, op string, arg interface{}) (bool, error) {
	switch op {
	case "$eq":
		return matchEq(val, found, arg)
	case "$ne":
		ok, err := matchEq(val, found, arg)
		return !ok, err
	case "$in", "$nin":
		list, err := canon(arg)
		if err != nil {
			return false, err
		}
		arr, ok := list.(primitive.A)
		if !ok {
			return false, fmt.Errorf("memory collection: %s expects an array", op)
		}
		in := false
		for _, el := range arr {
			if re, ok := el.(primitive.Regex); ok {
				if in, err = matchRegex(val, re); err != nil {
					return false, err
				}
			} else if in, err = matchEq(val, found, el); err != nil {
				return false, err
			}
			if in {
				break
			}
		}
		return in == (op == "$in"), nil
	case "$exists":
		want, _ := arg.(bool)
		return found == want, nil
	case "$regex":
		pattern, _ := arg.(string)
		return matchRegex(val, primitive.Regex{Pattern: pattern})
	}
	return false, fmt.Errorf("memory collection: unsupported operator %q", op)
}

func matchEq(val interface{}, found bool, want interface{}) (bool, error) {
	cw, err := canon(want)
	if err != nil {
		return false, err
	}
	if !found {
		return cw == nil, nil
	}
	if reflect.DeepEqual(val, cw) {
		return true, nil
	}
	if arr, ok := val.(primitive.A); ok {
		for _, el := range arr {
			if reflect.DeepEqual(el, cw) {
				return true, nil
			}
		}
	}
	return false, nil
}

func matchRegex(val interface{}, re primitive.Regex) (bool, error) {
	pattern := re.Pattern
	if strings.Contains(re.Options, "i") {
		pattern = "(?i)" + pattern
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return false, err
	}
	return regexMatches(val, rx), nil
}

func regexMatches(val interface{}, rx *regexp.Regexp) bool {
	switch t := val.(type) {
	case string:
		return rx.MatchString(t)
	case primitive.A:
		for _, el := range t {
			if regexMatches(el, rx) {
				return true
			}
		}
	}
	return false
}

func sortDocs(docs []bson.M, field string, desc bool) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, _ := lookup(docs[i], field)
		b, _ := lookup(docs[j], field)
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
}

// less orders missing/null values first, then numbers, strings and dates.
func less(a, b interface{}) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch x := a.(type) {
	case primitive.DateTime:
		return x < b.(primitive.DateTime)
	case string:
		return x < b.(string)
	case primitive.ObjectID:
		y := b.(primitive.ObjectID)
		return x.Hex() < y.Hex()
	}
	if fa, ok := number(a); ok {
		fb, _ := number(b)
		return fa < fb
	}
	return false
}

func rank(v interface{}) int {
	switch v.(type) {
	case nil:
		return 0
	case int32, int64, float64:
		return 1
	case string:
		return 2
	case primitive.ObjectID:
		return 3
	case primitive.DateTime:
		return 4
	}
	return 5
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
