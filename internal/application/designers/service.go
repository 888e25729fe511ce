package designers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"designer-shortlist/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("designer not found")

// Sort keys accepted by List. Anything else sorts by name.
const (
	SortByName     = "name"
	SortByRating   = "rating"
	SortByPrice    = "price"
	SortByProjects = "projects"
)

type Service struct {
	DB *gorm.DB
}

// ListFilter holds the query parameters of GET /api/designers. Text fields are matched
// case-insensitively as substrings; zero or nil numeric bounds are ignored.
type ListFilter struct {
	Search    string
	Location  string
	Tag       string
	MinRating *float64
	MaxPrice  *int
	SortBy    string
	SortOrder string
}

// SearchCriteria is the body of POST /api/designers/search.
type SearchCriteria struct {
	Keywords   string      `json:"keywords"`
	Tags       []string    `json:"tags"`
	Location   string      `json:"location"`
	MinRating  float64     `json:"min_rating"`
	PriceRange *PriceRange `json:"price_range"`
}

type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type PriceStats struct {
	Min int     `json:"min"`
	Max int     `json:"max"`
	Avg float64 `json:"avg"`
}

type Stats struct {
	TotalDesigners       int            `json:"total_designers"`
	AverageRating        float64        `json:"average_rating"`
	TotalProjects        int            `json:"total_projects"`
	TotalClients         int            `json:"total_clients"`
	LocationDistribution map[string]int `json:"location_distribution"`
	TagDistribution      map[string]int `json:"tag_distribution"`
	PriceStatistics      PriceStats     `json:"price_statistics"`
	TotalShortlists      int64          `json:"total_shortlists"`
}

// Active returns every active designer in id order.
func (s *Service) Active(ctx context.Context) ([]domain.Designer, error) {
	var rows []domain.DesignerRecord
	if err := s.DB.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load designers: %w", err)
	}
	out := make([]domain.Designer, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Designer())
	}
	return out, nil
}

// List filters and sorts the active designers.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Designer, error) {
	all, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(f.Search)
	location := strings.ToLower(f.Location)
	tag := strings.ToLower(f.Tag)

	out := make([]domain.Designer, 0, len(all))
	for _, d := range all {
		if search != "" && !contains(search, d.Name, d.Title, d.Description) && !anyContains(search, d.Tags) {
			continue
		}
		if location != "" && !contains(location, d.Location) {
			continue
		}
		if tag != "" && !anyContains(tag, d.Tags) {
			continue
		}
		if f.MinRating != nil && *f.MinRating != 0 && d.Rating < *f.MinRating {
			continue
		}
		if f.MaxPrice != nil && *f.MaxPrice != 0 {
			if p, ok := domain.PriceValue(d.Price); !ok || p > *f.MaxPrice {
				continue
			}
		}
		out = append(out, d)
	}
	sortDesigners(out, f.SortBy, strings.EqualFold(f.SortOrder, "desc"))
	return out, nil
}

// GetByID returns an active designer or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Designer, error) {
	var row domain.DesignerRecord
	err := s.DB.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load designer %d: %w", id, err)
	}
	d := row.Designer()
	return &d, nil
}

// Search applies the advanced criteria. Keywords match name, title or description; a designer
// matches the tag list when it carries any of them (whole tag, case-insensitive).
func (s *Service) Search(ctx context.Context, c SearchCriteria) ([]domain.Designer, error) {
	all, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	keywords := strings.ToLower(c.Keywords)
	location := strings.ToLower(c.Location)
	wanted := make(map[string]struct{}, len(c.Tags))
	for _, t := range c.Tags {
		wanted[strings.ToLower(t)] = struct{}{}
	}

	out := make([]domain.Designer, 0, len(all))
	for _, d := range all {
		if keywords != "" && !contains(keywords, d.Name, d.Title, d.Description) {
			continue
		}
		if len(wanted) > 0 && !hasAnyTag(d.Tags, wanted) {
			continue
		}
		if location != "" && !contains(location, d.Location) {
			continue
		}
		if c.MinRating != 0 && d.Rating < c.MinRating {
			continue
		}
		if c.PriceRange != nil && !c.PriceRange.includes(d.Price) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// Stats aggregates the active designers and the shortlist table.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	st := &Stats{
		TotalDesigners:       len(all),
		LocationDistribution: map[string]int{},
		TagDistribution:      map[string]int{},
	}
	var ratingSum float64
	var prices []int
	for _, d := range all {
		ratingSum += d.Rating
		st.TotalProjects += d.Projects
		st.TotalClients += d.Clients
		st.LocationDistribution[domain.Country(d.Location)]++
		for _, t := range d.Tags {
			st.TagDistribution[t]++
		}
		if p, ok := domain.PriceValue(d.Price); ok {
			prices = append(prices, p)
		}
	}
	if len(all) > 0 {
		st.AverageRating = math.Round(ratingSum/float64(len(all))*100) / 100
	}
	if len(prices) > 0 {
		st.PriceStatistics.Min, st.PriceStatistics.Max = prices[0], prices[0]
		sum := 0
		for _, p := range prices {
			sum += p
			if p < st.PriceStatistics.Min {
				st.PriceStatistics.Min = p
			}
			if p > st.PriceStatistics.Max {
				st.PriceStatistics.Max = p
			}
		}
		st.PriceStatistics.Avg = float64(sum) / float64(len(prices))
	}
	if err := s.DB.WithContext(ctx).Model(&domain.ShortlistEntry{}).Count(&st.TotalShortlists).Error; err != nil {
		return nil, fmt.Errorf("count shortlists: %w", err)
	}
	return st, nil
}

// Tags returns the distinct tags of active designers, sorted.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	all, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	var values []string
	for _, d := range all {
		values = append(values, d.Tags...)
	}
	return distinctSorted(values), nil
}

// Locations returns the distinct locations of active designers, sorted.
func (s *Service) Locations(ctx context.Context) ([]string, error) {
	all, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(all))
	for _, d := range all {
		values = append(values, d.Location)
	}
	return distinctSorted(values), nil
}

func (r PriceRange) includes(price string) bool {
	p, ok := domain.PriceValue(price)
	if !ok {
		return false
	}
	if r.Min != nil && float64(p) < *r.Min {
		return false
	}
	if r.Max != nil && float64(p) > *r.Max {
		return false
	}
	return true
}

func sortDesigners(ds []domain.Designer, by string, desc bool) {
	less := func(a, b domain.Designer) bool {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
	switch by {
	case SortByRating:
		less = func(a, b domain.Designer) bool { return a.Rating < b.Rating }
	case SortByPrice:
		less = func(a, b domain.Designer) bool {
			pa, _ := domain.PriceValue(a.Price)
			pb, _ := domain.PriceValue(b.Price)
			return pa < pb
		}
	case SortByProjects:
		less = func(a, b domain.Designer) bool { return a.Projects < b.Projects }
	}
	sort.SliceStable(ds, func(i, j int) bool {
		if desc {
			return less(ds[j], ds[i])
		}
		return less(ds[i], ds[j])
	})
}

func contains(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func anyContains(needle string, values []string) bool {
	return contains(needle, values...)
}

func hasAnyTag(tags []string, wanted map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := wanted[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
