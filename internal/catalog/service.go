// Package catalog serves product browsing for the storefront pages and the
// admin product console. All catalog data lives in the shop API; this layer
// shapes it for display and shields the API behind a short-lived cache.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/imageurl"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

const (
	homeSectionLimit     = 4
	relatedProductsLimit = 4
)

type upstream interface {
	ListProducts(ctx context.Context, query shopapi.ProductQuery) ([]shopapi.Product, error)
	GetProduct(ctx context.Context, id string) (*shopapi.Product, error)
	Categories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, token string, input shopapi.ProductInput) (*shopapi.Product, error)
	UpdateProduct(ctx context.Context, token, id string, input shopapi.ProductInput) (*shopapi.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
}

// Service exposes catalog reads and admin product writes.
type Service interface {
	Home(ctx context.Context) (*HomeData, error)
	List(ctx context.Context, query shopapi.ProductQuery) ([]shopapi.Product, error)
	Detail(ctx context.Context, id string) (*ProductDetail, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, token string, input shopapi.ProductInput) (*shopapi.Product, error)
	Update(ctx context.Context, token, id string, input shopapi.ProductInput) (*shopapi.Product, error)
	Delete(ctx context.Context, token, id string) error
}

// HomeData backs the storefront landing page.
type HomeData struct {
	Featured    []shopapi.Product `json:"featured"`
	NewArrivals []shopapi.Product `json:"new_arrivals"`
}

// ProductDetail is a product plus its related products.
type ProductDetail struct {
	Product shopapi.Product   `json:"product"`
	Related []shopapi.Product `json:"related"`
}

type service struct {
	api   upstream
	cache Cache
	img   imageurl.Normalizer
	logg  *logger.Logger
}

// NewService builds the catalog service. cache may be nil to disable caching.
func NewService(api upstream, cache Cache, img imageurl.Normalizer, logg *logger.Logger) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("shop API client required")
	}
	return &service{api: api, cache: cache, img: img, logg: logg}, nil
}

func (s *service) Home(ctx context.Context) (*HomeData, error) {
	var data HomeData
	if s.cached(ctx, "home", &data) {
		return &data, nil
	}

	featured, err := s.api.ListProducts(ctx, shopapi.ProductQuery{Featured: true, Limit: homeSectionLimit})
	if err != nil {
		return nil, err
	}
	arrivals, err := s.api.ListProducts(ctx, shopapi.ProductQuery{Sort: "-createdAt", Limit: homeSectionLimit})
	if err != nil {
		return nil, err
	}

	data = HomeData{
		Featured:    s.normalize(featured),
		NewArrivals: s.normalize(arrivals),
	}
	s.store(ctx, "home", data)
	return &data, nil
}

func (s *service) List(ctx context.Context, query shopapi.ProductQuery) ([]shopapi.Product, error) {
	key := listCacheKey(query)
	var products []shopapi.Product
	if s.cached(ctx, key, &products) {
		return products, nil
	}

	products, err := s.api.ListProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	products = s.normalize(products)
	s.store(ctx, key, products)
	return products, nil
}

func (s *service) Detail(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &ProductDetail{Product: s.normalizeOne(*product)}

	if product.Category != "" {
		related, err := s.api.ListProducts(ctx, shopapi.ProductQuery{
			Category: product.Category,
			Limit:    relatedProductsLimit + 1,
		})
		if err != nil {
			// Related products are decoration; the detail page still renders.
			if s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "product_id", id), "loading related products failed")
			}
		} else {
			for _, candidate := range related {
				if candidate.ID == product.ID {
					continue
				}
				detail.Related = append(detail.Related, s.normalizeOne(candidate))
				if len(detail.Related) == relatedProductsLimit {
					break
				}
			}
		}
	}

	return detail, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if s.cached(ctx, "categories", &categories) {
		return categories, nil
	}

	categories, err := s.api.Categories(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, "categories", categories)
	return categories, nil
}

func (s *service) Create(ctx context.Context, token string, input shopapi.ProductInput) (*shopapi.Product, error) {
	product, err := s.api.CreateProduct(ctx, token, input)
	if err != nil {
		return nil, err
	}
	normalized := s.normalizeOne(*product)
	return &normalized, nil
}

func (s *service) Update(ctx context.Context, token, id string, input shopapi.ProductInput) (*shopapi.Product, error) {
	product, err := s.api.UpdateProduct(ctx, token, id, input)
	if err != nil {
		return nil, err
	}
	normalized := s.normalizeOne(*product)
	return &normalized, nil
}

func (s *service) Delete(ctx context.Context, token, id string) error {
	return s.api.DeleteProduct(ctx, token, id)
}

func (s *service) normalize(products []shopapi.Product) []shopapi.Product {
	out := make([]shopapi.Product, len(products))
	for i, product := range products {
		out[i] = s.normalizeOne(product)
	}
	return out
}

func (s *service) normalizeOne(product shopapi.Product) shopapi.Product {
	product.Image = s.img.Normalize(product.Image)
	return product
}

// cached loads key into out, reporting whether it hit. Cache failures are
// treated as misses.
func (s *service) cached(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "cache_key", key), "catalog cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false
	}
	return true
}

func (s *service) store(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload)); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "cache_key", key), "catalog cache write failed")
	}
}

func listCacheKey(query shopapi.ProductQuery) string {
	values := url.Values{}
	if query.Featured {
		values.Set("featured", "true")
	}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	return "list?" + values.Encode()
}
