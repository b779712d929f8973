package app

import (
	"fmt"

	authService "github.com/allisson/recipes/internal/auth/service"
	authUsecase "github.com/allisson/recipes/internal/auth/usecase"
)

// PasswordService returns the Argon2id password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenCodec returns the access token codec. The signing key is decoded once
// here; a missing or malformed key fails the whole auth stack.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		codec, err := authService.NewTokenCodec(c.config.AuthSecretKey, c.config.AuthTokenExpiration)
		if err != nil {
			c.initErrors["tokenCodec"] = fmt.Errorf("failed to create token codec: %w", err)
			return
		}
		c.tokenCodec = codec
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUsecase.UseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// Authorizer returns the ownership authorizer backed by the recipe repository.
func (c *Container) Authorizer() (authUsecase.Authorizer, error) {
	c.authorizerInit.Do(func() {
		recipeRepo, err := c.RecipeRepository()
		if err != nil {
			c.initErrors["authorizer"] = fmt.Errorf("failed to get recipe repository for authorizer: %w", err)
			return
		}
		c.authorizer = authUsecase.NewOwnershipAuthorizer(recipeRepo)
	})
	if storedErr, exists := c.initErrors["authorizer"]; exists {
		return nil, storedErr
	}
	return c.authorizer, nil
}

// initAuthUseCase creates the auth use case with all its dependencies.
// The account use case serves as the token subject lookup.
func (c *Container) initAuthUseCase() (authUsecase.UseCase, error) {
	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for auth use case: %w", err)
	}

	accountUseCase, err := c.AccountUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get account use case for auth use case: %w", err)
	}

	baseUseCase := authUsecase.NewAuthUseCase(codec, c.PasswordService(), accountUseCase)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUsecase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
