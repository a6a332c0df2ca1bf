package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elmufurqaan/site/backend/go-services/internal/database"
)

const aboutYAML = `
title: About us
sections:
  - heading: Who we are
    body: <p onclick="steal()">A small team teaching <b>Quran</b> online.</p><script>alert(1)</script>
  - heading: আমাদের লক্ষ্য
    body: সবার জন্য শিক্ষা
`

func TestDecodeAbout(t *testing.T) {
	doc, err := decodeAbout(strings.NewReader(aboutYAML))
	require.NoError(t, err)
	require.Equal(t, "About us", doc["title"])
	require.Len(t, doc["sections"], 2)
	first := doc["sections"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, "<p>A small team teaching <b>Quran</b> online.</p>", first["body"])

	_, err = decodeAbout(strings.NewReader(""))
	require.EqualError(t, err, "about file is empty")

	_, err = decodeAbout(strings.NewReader("title: x\n"))
	require.Error(t, err)

	_, err = decodeAbout(strings.NewReader("sections: [unclosed"))
	require.Error(t, err)
}

func TestSeedAbout_ReplacesContent(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	col := store.Collection(database.AboutCollection)
	_, err := col.InsertOne(ctx, bson.M{"title": "old"})
	require.NoError(t, err)

	doc, err := decodeAbout(strings.NewReader(aboutYAML))
	require.NoError(t, err)
	id, err := seedAbout(ctx, store, doc)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var all []bson.M
	require.NoError(t, col.Find(ctx, bson.M{}, nil, &all))
	require.Len(t, all, 1)
	require.Equal(t, "About us", all[0]["title"])
	require.Len(t, all[0]["sections"], 2)
}
