package client

import (
	"context"
)

// Coordinates - пара широта/долгота
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// LocationSource определяет контракт получения местоположения клиента
type LocationSource interface {
	// Fix выполняет одноразовое определение местоположения
	Fix(ctx context.Context) (Coordinates, error)
	// Watch возвращает канал непрерывных обновлений местоположения.
	// Канал закрывается при отмене контекста.
	Watch(ctx context.Context) <-chan Coordinates
}

// StaticLocationSource всегда возвращает фиксированные координаты и не дает обновлений.
// Используется как источник по умолчанию для терминального клиента, у которого
// нет доступа к GPS.
type StaticLocationSource struct {
	coords Coordinates
}

func NewStaticLocationSource(lat, lon float64) *StaticLocationSource {
	return &StaticLocationSource{
		coords: Coordinates{Latitude: lat, Longitude: lon},
	}
}

// Fix возвращает фиксированные координаты
func (s *StaticLocationSource) Fix(ctx context.Context) (Coordinates, error) {
	return s.coords, nil
}

// Watch возвращает канал без обновлений, закрываемый при отмене контекста
func (s *StaticLocationSource) Watch(ctx context.Context) <-chan Coordinates {
	ch := make(chan Coordinates)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}
