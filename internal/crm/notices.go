package crm

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/docstore"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/models"
)

const (
	priceUpdatesCollection = "price_updates"
	oceanFreightCollection = "ocean_freight"
)

// Notice document field names, shared by both boards.
const (
	noticeFieldDescription = "description"
	noticeFieldStatus      = "status"
	noticeFieldDate        = "date"
)

// noticeDateLayout is the storage form of a notice date. Day precision is
// deliberate: notices are worked off within days and sorted by day.
const noticeDateLayout = "2006-01-02"

// notice is the storage-level shape shared by price-update and ocean-freight
// records; the public services wrap it into their own model types.
type notice struct {
	ID          string
	Description string
	Status      string
	Date        string
}

// noticeBoard implements the shared behaviour of both notice services over a
// single collection.
type noticeBoard struct {
	collection string
	store      docstore.DocumentStore
	logger     *logger.Logger
}

func (b *noticeBoard) add(ctx context.Context, description string) (notice, error) {
	log := logger.FromContext(ctx)

	description = strings.TrimSpace(description)
	if description == "" {
		return notice{}, ErrEmptyText
	}

	n := notice{
		Description: description,
		Status:      models.PriceUpdateStatusWaiting,
		Date:        time.Now().UTC().Format(noticeDateLayout),
	}

	id, err := b.store.Add(ctx, b.collection, map[string]any{
		noticeFieldDescription: n.Description,
		noticeFieldStatus:      n.Status,
		noticeFieldDate:        n.Date,
	})
	if err != nil {
		log.Err(err).Str("func", "*noticeBoard.add").Str("collection", b.collection).Msg("error saving notice")
		return notice{}, ErrStorage
	}

	n.ID = id
	return n, nil
}

func (b *noticeBoard) list(ctx context.Context) ([]notice, error) {
	log := logger.FromContext(ctx)

	documents, err := b.store.List(ctx, b.collection, noticeFieldDate, true)
	if err != nil {
		log.Err(err).Str("func", "*noticeBoard.list").Str("collection", b.collection).Msg("error listing notices")
		return nil, ErrStorage
	}

	notices := make([]notice, 0, len(documents))
	for _, doc := range documents {
		notices = append(notices, notice{
			ID:          doc.ID,
			Description: stringField(doc.Fields, noticeFieldDescription),
			Status:      stringField(doc.Fields, noticeFieldStatus),
			Date:        stringField(doc.Fields, noticeFieldDate),
		})
	}

	// The store orders by day; keep same-day notices stable by description
	// so two clients render identical lists.
	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].Date > notices[j].Date
	})

	return notices, nil
}

func (b *noticeBoard) delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := b.store.Delete(ctx, b.collection, id); err != nil {
		log.Err(err).Str("func", "*noticeBoard.delete").Str("collection", b.collection).Msg("error deleting notice")
		return ErrStorage
	}

	return nil
}

type priceUpdateService struct {
	board noticeBoard
}

// NewPriceUpdateService constructs a [PriceUpdateService] backed by the
// document store.
func NewPriceUpdateService(store docstore.DocumentStore, log *logger.Logger) PriceUpdateService {
	log.Debug().Msg("creating price update service")
	return &priceUpdateService{board: noticeBoard{collection: priceUpdatesCollection, store: store, logger: log}}
}

func (s *priceUpdateService) Add(ctx context.Context, description string) (models.PriceUpdate, error) {
	n, err := s.board.add(ctx, description)
	if err != nil {
		return models.PriceUpdate{}, err
	}
	return models.PriceUpdate(n), nil
}

func (s *priceUpdateService) List(ctx context.Context) ([]models.PriceUpdate, error) {
	notices, err := s.board.list(ctx)
	if err != nil {
		return nil, err
	}

	updates := make([]models.PriceUpdate, 0, len(notices))
	for _, n := range notices {
		updates = append(updates, models.PriceUpdate(n))
	}
	return updates, nil
}

func (s *priceUpdateService) Delete(ctx context.Context, id string) error {
	return s.board.delete(ctx, id)
}

type oceanFreightService struct {
	board noticeBoard
}

// NewOceanFreightService constructs an [OceanFreightService] backed by the
// document store.
func NewOceanFreightService(store docstore.DocumentStore, log *logger.Logger) OceanFreightService {
	log.Debug().Msg("creating ocean freight service")
	return &oceanFreightService{board: noticeBoard{collection: oceanFreightCollection, store: store, logger: log}}
}

func (s *oceanFreightService) Add(ctx context.Context, description string) (models.OceanFreight, error) {
	n, err := s.board.add(ctx, description)
	if err != nil {
		return models.OceanFreight{}, err
	}
	return models.OceanFreight(n), nil
}

func (s *oceanFreightService) List(ctx context.Context) ([]models.OceanFreight, error) {
	notices, err := s.board.list(ctx)
	if err != nil {
		return nil, err
	}

	freights := make([]models.OceanFreight, 0, len(notices))
	for _, n := range notices {
		freights = append(freights, models.OceanFreight(n))
	}
	return freights, nil
}

func (s *oceanFreightService) Delete(ctx context.Context, id string) error {
	return s.board.delete(ctx, id)
}
