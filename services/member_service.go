package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/repositories"
)

var (
	ErrMemberNotFound         = errors.New("member not found")
	ErrMemberNicknameRequired = errors.New("member nickname is required")
	ErrMemberNicknameConflict = errors.New("nickname already in use")
	ErrMemberCreationFailed   = errors.New("failed to add member")
	ErrMemberDeleteFailed     = errors.New("failed to delete member")
)

type MemberService interface {
	ListMembers(ctx context.Context, event *models.Event) ([]models.Member, error)
	GetMemberByNickname(ctx context.Context, nickname string) (*models.Member, error)
	AddMember(ctx context.Context, event *models.Event, input AddMemberInput) (*models.Member, error)
	RemoveMember(ctx context.Context, member *models.Member) error
}

type AddMemberInput struct {
	Nickname string `json:"nickname"`
}

type memberService struct {
	memberRepo repositories.MemberRepository
}

func NewMemberService(memberRepo repositories.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) ListMembers(ctx context.Context, event *models.Event) ([]models.Member, error) {
	members, err := s.memberRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of %s: %w", event.Name, err)
	}
	return members, nil
}

func (s *memberService) GetMemberByNickname(ctx context.Context, nickname string) (*models.Member, error) {
	member, err := s.memberRepo.GetByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member %q: %w", nickname, err)
	}
	return member, nil
}

func (s *memberService) AddMember(ctx context.Context, event *models.Event, input AddMemberInput) (*models.Member, error) {
	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, ErrMemberNicknameRequired
	}

	member := &models.Member{
		Nickname: nickname,
		EventID:  event.ID,
	}
	err := s.memberRepo.Create(ctx, member)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNicknameConflict) {
			return nil, ErrMemberNicknameConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrMemberCreationFailed, err)
	}
	return member, nil
}

func (s *memberService) RemoveMember(ctx context.Context, member *models.Member) error {
	err := s.memberRepo.Delete(ctx, member.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("%w (nickname: %s): %w", ErrMemberDeleteFailed, member.Nickname, err)
	}
	return nil
}
