package analysis

import (
	"sort"

	"github.com/hollowoak/threadlens/internal/model"
)

// DefaultMaxNodes caps the co-activity graph at the top authors by volume.
const DefaultMaxNodes = 500

// MinEdgeWeight drops incidental one-off co-occurrences from the graph.
const MinEdgeWeight = 2

// Node is one author in the co-activity graph, sized by post count.
type Node struct {
	ID    string `json:"id"`
	Posts int    `json:"posts"`
}

// Link is an undirected edge weighted by the number of (subreddit, day)
// buckets the two authors share.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Graph is the author co-activity network consumed by the network view.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

type bucketKey struct {
	subreddit string
	date      string
}

type edgeKey struct {
	a, b string // a < b
}

// CoactivityNetwork connects authors who posted in the same subreddit on the
// same day. Nodes are the top maxNodes authors by post count (descending,
// stable ties); links are kept when the shared-bucket weight reaches
// MinEdgeWeight and both endpoints are ranked nodes. maxNodes <= 0 uses
// DefaultMaxNodes. Deterministic for a given input order.
func CoactivityNetwork(posts []model.ProcessedPost, maxNodes int) Graph {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	// Distinct authors per (subreddit, day), in first-encountered order.
	var bucketOrder []bucketKey
	buckets := make(map[bucketKey][]string)
	seen := make(map[bucketKey]map[string]struct{})

	for _, p := range posts {
		if p.Author == "" || p.Author == model.AuthorDeleted || p.Subreddit == "" {
			continue
		}
		k := bucketKey{subreddit: p.Subreddit, date: p.Date}
		members := seen[k]
		if members == nil {
			members = make(map[string]struct{})
			seen[k] = members
			bucketOrder = append(bucketOrder, k)
		}
		if _, dup := members[p.Author]; dup {
			continue
		}
		members[p.Author] = struct{}{}
		buckets[k] = append(buckets[k], p.Author)
	}

	ranked := rank(countBy(posts,
		func(p model.ProcessedPost) string { return p.Author },
		func(key string) bool { return key == "" || key == model.AuthorDeleted }), maxNodes)

	rankedSet := make(map[string]struct{}, len(ranked))
	nodes := make([]Node, len(ranked))
	for i, r := range ranked {
		nodes[i] = Node{ID: r.Key, Posts: r.Count}
		rankedSet[r.Key] = struct{}{}
	}

	// Edge weights accumulated in bucket order so output does not depend on
	// map iteration.
	var edgeOrder []edgeKey
	weights := make(map[edgeKey]int)
	for _, bk := range bucketOrder {
		authors := buckets[bk]
		for i := 0; i < len(authors); i++ {
			for j := i + 1; j < len(authors); j++ {
				a, b := authors[i], authors[j]
				if b < a {
					a, b = b, a
				}
				ek := edgeKey{a: a, b: b}
				if _, exists := weights[ek]; !exists {
					edgeOrder = append(edgeOrder, ek)
				}
				weights[ek]++
			}
		}
	}

	var links []Link
	for _, ek := range edgeOrder {
		w := weights[ek]
		if w < MinEdgeWeight {
			continue
		}
		if _, ok := rankedSet[ek.a]; !ok {
			continue
		}
		if _, ok := rankedSet[ek.b]; !ok {
			continue
		}
		links = append(links, Link{Source: ek.a, Target: ek.b, Weight: w})
	}

	sort.SliceStable(links, func(i, j int) bool { return links[i].Weight > links[j].Weight })
	return Graph{Nodes: nodes, Links: links}
}
