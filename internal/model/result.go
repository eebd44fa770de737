package model

// Result is the outcome of one full analysis run.
type Result struct {
	Format string `json:"format"` // inferred date layout tag, e.g. "yyyy-MM-dd"
	Pairs  []Pair `json:"pairs"`  // every pair achieving the global maximum overlap
	Stats  Stats  `json:"stats"`
}

// Stats counts rows seen and rows dropped across all stages.
type Stats struct {
	RowsRead    int `json:"rows_read"`    // data rows ingested, header excluded
	RowsSkipped int `json:"rows_skipped"` // structural, lexical, and semantic skips combined
}
