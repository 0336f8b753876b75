// Package threadlens provides a post analytics engine: it ingests a
// Reddit-style dataset dump, derives sentiment and source-domain fields
// for every post, and answers aggregate and free-text analytical queries
// over a filterable working set.
//
// Quick start:
//
//	a, err := threadlens.Load(ctx, threadlens.WithFile("dump.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, d := range a.TopDomains(5) {
//	    fmt.Println(d.Key, d.Count)
//	}
//	fmt.Println(a.Ask("how is the overall sentiment?").Text)
//
// The Analyzer holds a single in-memory session and is not safe for
// concurrent use. See the README for full documentation.
package threadlens
