package tui

// --- Messages ---

type catalogLoadedMsg struct {
	catalog *Catalog
	stats   walkStats
	err     error
	gen     uint64
}

type docLoadedMsg struct {
	path    string
	content string
	err     error
	gen     uint64
}

type openedMsg struct {
	path string
	err  error
}
