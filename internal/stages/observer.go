package stages

import (
	"bookloom/internal/external"
	"bookloom/internal/library"
)

// Observer receives progress from a running stage. The console implements it
// for operators; tests record it.
type Observer interface {
	StageStarted(stage Name, book library.Book, files []string)
	NothingToProcess(stage Name, book library.Book, hint string)
	FileStarted(stage Name, index, total int, file string)
	FileFinished(stage Name, index, total int, file string, res external.Result, err error)
	StageFinished(res Result)
}

type nopObserver struct{}

func (nopObserver) StageStarted(Name, library.Book, []string) {}
func (nopObserver) NothingToProcess(Name, library.Book, string) {}
func (nopObserver) FileStarted(Name, int, int, string) {}
func (nopObserver) FileFinished(Name, int, int, string, external.Result, error) {}
func (nopObserver) StageFinished(Result) {}
