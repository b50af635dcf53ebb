package services

import (
	"context"

	"cafeapi/internal/config"
	"cafeapi/internal/models/db_models"
	"cafeapi/internal/models/request_models"
	"cafeapi/internal/models/response_models"
	"cafeapi/internal/repositories"
	"cafeapi/pkg/utils"
)

type CafeServiceInterface interface {
	ListAll(ctx context.Context) ([]response_models.CafeResponse, error)
	GetRandom(ctx context.Context) (*response_models.CafeResponse, error)
	SearchByLocation(ctx context.Context, location string) (*response_models.CafeResponse, error)
	AddCafe(ctx context.Context, req request_models.AddCafeRequest) error
	UpdatePrice(ctx context.Context, id uint, newPrice *string) error
	DeleteCafe(ctx context.Context, id uint, apiKey string) error
	Healthy(ctx context.Context) error
}

type CafeService struct {
	cafeRepo repositories.CafeRepositoryInterface
	apiKey   string
}

func NewCafeService(cafeRepo repositories.CafeRepositoryInterface, cfg config.Config) CafeServiceInterface {
	return &CafeService{
		cafeRepo: cafeRepo,
		apiKey:   cfg.APIKey,
	}
}

func (s *CafeService) ListAll(ctx context.Context) ([]response_models.CafeResponse, error) {
	cafes, err := s.cafeRepo.ListCafes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response_models.CafeResponse, 0, len(cafes))
	for i := range cafes {
		resp = append(resp, toCafeResponse(&cafes[i]))
	}
	return resp, nil
}

func (s *CafeService) GetRandom(ctx context.Context) (*response_models.CafeResponse, error) {
	cafe, err := s.cafeRepo.GetRandomCafe(ctx)
	if err != nil {
		return nil, err
	}
	resp := toCafeResponse(cafe)
	return &resp, nil
}

func (s *CafeService) SearchByLocation(ctx context.Context, location string) (*response_models.CafeResponse, error) {
	cafe, err := s.cafeRepo.FindByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	resp := toCafeResponse(cafe)
	return &resp, nil
}

// AddCafe stores a new cafe. Required text fields may be empty but not
// absent. Amenity flags are set whenever the submitted value is non-empty,
// so "false" also counts as true.
func (s *CafeService) AddCafe(ctx context.Context, req request_models.AddCafeRequest) error {
	for _, field := range []*string{req.Name, req.MapURL, req.ImgURL, req.Location, req.Seats} {
		if field == nil {
			return utils.ErrInvalidCafe
		}
	}

	cafe := &db_models.Cafe{
		Name:         *req.Name,
		MapURL:       *req.MapURL,
		ImgURL:       *req.ImgURL,
		Location:     *req.Location,
		Seats:        *req.Seats,
		HasSockets:   utils.Truthy(req.HasSockets),
		HasToilet:    utils.Truthy(req.HasToilet),
		HasWifi:      utils.Truthy(req.HasWifi),
		CanTakeCalls: utils.Truthy(req.CanTakeCalls),
		CoffeePrice:  req.CoffeePrice,
	}

	return s.cafeRepo.CreateCafe(ctx, cafe)
}

func (s *CafeService) UpdatePrice(ctx context.Context, id uint, newPrice *string) error {
	return s.cafeRepo.UpdateCoffeePrice(ctx, id, newPrice)
}

// DeleteCafe removes a cafe reported as closed. The key is checked before
// the store is touched.
func (s *CafeService) DeleteCafe(ctx context.Context, id uint, apiKey string) error {
	if !utils.SecretMatches(s.apiKey, apiKey) {
		return utils.ErrForbidden
	}
	return s.cafeRepo.DeleteCafe(ctx, id)
}

func (s *CafeService) Healthy(ctx context.Context) error {
	return s.cafeRepo.Ping(ctx)
}

func toCafeResponse(cafe *db_models.Cafe) response_models.CafeResponse {
	return response_models.CafeResponse{
		ID:           cafe.ID,
		Name:         cafe.Name,
		MapURL:       cafe.MapURL,
		ImgURL:       cafe.ImgURL,
		Location:     cafe.Location,
		Seats:        cafe.Seats,
		HasToilet:    cafe.HasToilet,
		HasWifi:      cafe.HasWifi,
		HasSockets:   cafe.HasSockets,
		CanTakeCalls: cafe.CanTakeCalls,
		CoffeePrice:  cafe.CoffeePrice,
	}
}
