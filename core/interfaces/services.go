// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"dip-digest/core/domain"
)

// DocumentSource is the DIP API as seen by the pagination and text steps
type DocumentSource interface {
	// ListPage fetches one page of the drucksache list for the window.
	// An empty cursor requests the first page.
	ListPage(ctx context.Context, window domain.DateWindow, cursor string) (*domain.ListPage, error)

	// ListPageURL fetches a page from an absolute links.next URL
	ListPageURL(ctx context.Context, url string) (*domain.ListPage, error)

	// TextDetail fetches the drucksache-text detail for a document
	TextDetail(ctx context.Context, id domain.DocumentID) (*domain.TextDetail, error)
}
