package memory

import (
	"context"
	"time"

	"github.com/goowebia/hay-paso/internal/domain"

	"github.com/google/uuid"
)

// DemoReports is the sample feed the mobile client was designed against, oldest first.
func DemoReports(now time.Time) []*domain.Report {
	return []*domain.Report{
		{
			ID:           uuid.New(),
			AuthorName:   "Maria R.",
			AuthorAvatar: "https://picsum.photos/seed/maria/100",
			CreatedAt:    now.Add(-120 * time.Minute),
			Location:     "Caseta San Marcos",
			Description:  "Todo libre por el momento, fluido de GDL a Colima.",
			Status:       domain.StatusFluid,
			Likes:        8,
			Comments:     1,
		},
		{
			ID:               uuid.New(),
			AuthorName:       "Accidentes Carretera Colima-Guadalajara",
			AuthorAvatar:     "https://picsum.photos/seed/group/100",
			CreatedAt:        now.Add(-45 * time.Minute),
			Location:         "Km 58",
			Description:      "Reportan choque múltiple bajando hacia Manzanillo. Paso intermitente.",
			Status:           domain.StatusAccident,
			MediaURL:         "https://picsum.photos/seed/accident/600/400",
			MediaKind:        domain.MediaImage,
			Likes:            45,
			Comments:         21,
			IsExternalSource: true,
			Coords:           &domain.Coordinates{Lat: 20.1567, Lng: -103.4890},
		},
		{
			ID:           uuid.New(),
			AuthorName:   "Juan Mecánico",
			AuthorAvatar: "https://picsum.photos/seed/juan/100",
			CreatedAt:    now.Add(-15 * time.Minute),
			Location:     "Cuesta de Sayula",
			Description:  "Tráfico súper lento por trailer averiado en carril de baja. Tomen precauciones.",
			Status:       domain.StatusSlow,
			MediaURL:     "https://picsum.photos/seed/truck/600/400",
			MediaKind:    domain.MediaImage,
			Likes:        12,
			Comments:     3,
			Coords:       &domain.Coordinates{Lat: 20.0123, Lng: -103.5678},
		},
	}
}

// Seed inserts the demo reports so that the newest ends up first.
func (s *FeedStore) Seed(ctx context.Context, now time.Time) error {
	for _, r := range DemoReports(now) {
		if err := s.Insert(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
