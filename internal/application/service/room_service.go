package service

import (
	"context"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/billing"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/repository"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/apperror"
	"github.com/Haiderali27-hub/hotel-manager-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// RoomService handles room-related operations
type RoomService struct {
	roomRepo repository.RoomRepository
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repository.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

// CreateRoomInput represents the create room input
type CreateRoomInput struct {
	Number    string
	Type      string
	DailyRate float64
	Notes     *string
}

// CreateRoom creates a new room
func (s *RoomService) CreateRoom(ctx context.Context, input *CreateRoomInput) (*entity.Room, error) {
	existing, err := s.roomRepo.GetByNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Room number already exists")
	}

	if input.DailyRate < 0 {
		return nil, apperror.NewBadRequestError("Daily rate cannot be negative")
	}

	roomType := input.Type
	if roomType == "" {
		roomType = "standard"
	}

	room := &entity.Room{
		Number:    input.Number,
		Type:      roomType,
		DailyRate: billing.CentsFromFloat(input.DailyRate),
		Notes:     input.Notes,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// GetRoom returns a room by ID
func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}
	return room, nil
}

// UpdateRoomInput represents the update room input
type UpdateRoomInput struct {
	Number    *string
	Type      *string
	DailyRate *float64
	Notes     *string
}

// UpdateRoom updates a room. Rate changes apply to future billing
// computations only; cached checkout breakdowns keep the rate they
// were billed at.
func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, input *UpdateRoomInput) (*entity.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}

	if input.Number != nil && *input.Number != room.Number {
		existing, err := s.roomRepo.GetByNumber(ctx, *input.Number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Room number already exists")
		}
		room.Number = *input.Number
	}
	if input.Type != nil {
		room.Type = *input.Type
	}
	if input.DailyRate != nil {
		if *input.DailyRate < 0 {
			return nil, apperror.NewBadRequestError("Daily rate cannot be negative")
		}
		room.DailyRate = billing.CentsFromFloat(*input.DailyRate)
	}
	if input.Notes != nil {
		room.Notes = input.Notes
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// DeleteRoom deletes a room unless it is occupied
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil {
		return apperror.NewNotFoundError("Room")
	}
	if room.Occupied {
		return apperror.NewConflictError("Cannot delete an occupied room")
	}
	return s.roomRepo.Delete(ctx, id)
}

// ListRooms returns rooms with pagination
func (s *RoomService) ListRooms(ctx context.Context, params *pagination.PaginationParams, availableOnly bool) ([]entity.Room, int64, error) {
	return s.roomRepo.List(ctx, params, availableOnly)
}
