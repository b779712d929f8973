package app

import (
	"fmt"

	pagesRepository "github.com/allisson/recipes/internal/pages/repository"
	pagesUsecase "github.com/allisson/recipes/internal/pages/usecase"
)

// PagesRepository returns the pages repository based on database driver.
func (c *Container) PagesRepository() (pagesUsecase.PagesRepository, error) {
	c.pagesRepoInit.Do(func() {
		repo, err := c.initPagesRepository()
		if err != nil {
			c.initErrors["pagesRepo"] = err
			return
		}
		c.pagesRepo = repo
	})
	if storedErr, exists := c.initErrors["pagesRepo"]; exists {
		return nil, storedErr
	}
	return c.pagesRepo, nil
}

// PagesUseCase returns the pages use case.
func (c *Container) PagesUseCase() (pagesUsecase.UseCase, error) {
	c.pagesUseCaseInit.Do(func() {
		useCase, err := c.initPagesUseCase()
		if err != nil {
			c.initErrors["pagesUseCase"] = err
			return
		}
		c.pagesUseCase = useCase
	})
	if storedErr, exists := c.initErrors["pagesUseCase"]; exists {
		return nil, storedErr
	}
	return c.pagesUseCase, nil
}

// initPagesRepository creates the pages repository instance.
func (c *Container) initPagesRepository() (pagesUsecase.PagesRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for pages repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return pagesRepository.NewMySQLPagesRepository(db), nil
	case "postgres":
		return pagesRepository.NewPostgreSQLPagesRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initPagesUseCase creates the pages use case with all its dependencies.
// The recipe repository resolves recipe ownership before marks are stored.
func (c *Container) initPagesUseCase() (pagesUsecase.UseCase, error) {
	pagesRepo, err := c.PagesRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get pages repository for pages use case: %w", err)
	}

	recipeRepo, err := c.RecipeRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe repository for pages use case: %w", err)
	}

	baseUseCase := pagesUsecase.NewPagesUseCase(pagesRepo, recipeRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for pages use case: %w", err)
		}
		return pagesUsecase.NewPagesUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
