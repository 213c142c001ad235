package service

import (
	"context"

	"booklisting-backend/internal/domains/seller/model"
	"booklisting-backend/internal/domains/seller/repository"

	"github.com/rs/zerolog/log"
)

type SellerService struct {
	repo    repository.RepositoryInterface
	newCode model.CodeGenerator
}

// NewService - Constructor with DI. A nil generator uses model.NewCode.
func NewService(repo repository.RepositoryInterface, gen model.CodeGenerator) ServiceInterface {
	if gen == nil {
		gen = model.NewCode
	}
	return &SellerService{
		repo:    repo,
		newCode: gen,
	}
}

func (s *SellerService) ResolveOrCreate(ctx context.Context, contact, name string) (string, bool, error) {
	reg, err := s.repo.Load(ctx)
	if err != nil {
		return "", false, err
	}

	key := model.Normalize(contact)
	isNew := false

	entry, ok := reg[key]
	if ok {
		entry.Count++
		entry.Name = name
	} else {
		entry, err = s.insert(reg, key, name)
		if err != nil {
			return "", false, err
		}
		isNew = true
	}

	if err := s.repo.Save(ctx, reg); err != nil {
		return "", false, err
	}
	return entry.Code, isNew, nil
}

func (s *SellerService) Resolve(ctx context.Context, contact, name string) (string, bool, error) {
	reg, err := s.repo.Load(ctx)
	if err != nil {
		return "", false, err
	}

	key := model.Normalize(contact)
	if entry, ok := reg[key]; ok {
		return entry.Code, false, nil
	}

	entry, err := s.insert(reg, key, name)
	if err != nil {
		return "", false, err
	}
	if err := s.repo.Save(ctx, reg); err != nil {
		return "", false, err
	}
	return entry.Code, true, nil
}

func (s *SellerService) Registry(ctx context.Context) (model.Registry, error) {
	return s.repo.Load(ctx)
}

func (s *SellerService) Replace(ctx context.Context, listings []model.Attribution) (model.Registry, map[string]string, error) {
	reg, codes, err := model.RegenerateAll(listings, s.newCode)
	if err != nil {
		return nil, nil, err
	}
	if err := s.repo.Save(ctx, reg); err != nil {
		return nil, nil, err
	}
	return reg, codes, nil
}

func (s *SellerService) insert(reg model.Registry, key, name string) (*model.SellerEntry, error) {
	code, err := s.newCode()
	if err != nil {
		return nil, err
	}

	entry := &model.SellerEntry{
		Code:    code,
		Name:    name,
		Contact: key,
		Count:   1,
	}
	reg[key] = entry

	log.Info().Str("code", code).Msg("[Seller] New seller registered")
	return entry, nil
}
