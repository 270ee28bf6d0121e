// Package auth autentica colaboradores pelo nome e emite tokens JWT com o
// papel embutido, para o middleware de permissões decidir sem consultar o
// estado.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/domain"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/pkg/config"
	"github.com/gestorone/estoque-api/pkg/jwt"
	"github.com/gestorone/estoque-api/pkg/logger"
)

// CollaboratorFinder resolve colaboradores pelo nome exibido (insensível a
// caixa e acento).
type CollaboratorFinder interface {
	CollaboratorByName(name string) (entity.Colaborador, bool)
}

type Service struct {
	finder CollaboratorFinder
	cfg    config.JWTConfig
	log    *logger.Logger
}

func NewService(finder CollaboratorFinder, cfg config.JWTConfig, log *logger.Logger) *Service {
	return &Service{finder: finder, cfg: cfg, log: log}
}

// Login valida nome e senha e devolve o token. Nome desconhecido e senha
// errada produzem o mesmo erro: o chamador não descobre qual dos dois falhou.
func (s *Service) Login(name, password string) (*dto.LoginResponse, error) {
	if name == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	col, ok := s.finder.CollaboratorByName(name)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(col.PasswordHash), []byte(password)); err != nil {
		s.log.Warn().Str("colaborador", col.ID).Msg("tentativa de login com senha incorreta")
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(s.cfg.Secret, col.ID, col.Name, col.Role, s.cfg.Issuer, s.cfg.Expiration)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("colaborador", col.ID).Str("papel", col.Role).Msg("login efetuado")
	return &dto.LoginResponse{
		Token: token,
		ID:    col.ID,
		Name:  col.Name,
		Role:  col.Role,
	}, nil
}
