package app

import (
	"fmt"

	recipeRepository "github.com/allisson/recipes/internal/recipe/repository"
	recipeUsecase "github.com/allisson/recipes/internal/recipe/usecase"
)

// RecipeRepository returns the recipe repository based on database driver.
func (c *Container) RecipeRepository() (recipeUsecase.RecipeRepository, error) {
	c.recipeRepoInit.Do(func() {
		repo, err := c.initRecipeRepository()
		if err != nil {
			c.initErrors["recipeRepo"] = err
			return
		}
		c.recipeRepo = repo
	})
	if storedErr, exists := c.initErrors["recipeRepo"]; exists {
		return nil, storedErr
	}
	return c.recipeRepo, nil
}

// RecipeUseCase returns the recipe use case.
func (c *Container) RecipeUseCase() (recipeUsecase.UseCase, error) {
	c.recipeUseCaseInit.Do(func() {
		useCase, err := c.initRecipeUseCase()
		if err != nil {
			c.initErrors["recipeUseCase"] = err
			return
		}
		c.recipeUseCase = useCase
	})
	if storedErr, exists := c.initErrors["recipeUseCase"]; exists {
		return nil, storedErr
	}
	return c.recipeUseCase, nil
}

// initRecipeRepository creates the recipe repository instance.
func (c *Container) initRecipeRepository() (recipeUsecase.RecipeRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for recipe repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return recipeRepository.NewMySQLRecipeRepository(db), nil
	case "postgres":
		return recipeRepository.NewPostgreSQLRecipeRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRecipeUseCase creates the recipe use case with all its dependencies.
func (c *Container) initRecipeUseCase() (recipeUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for recipe use case: %w", err)
	}

	recipeRepo, err := c.RecipeRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe repository for recipe use case: %w", err)
	}

	baseUseCase := recipeUsecase.NewRecipeUseCase(txManager, recipeRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for recipe use case: %w", err)
		}
		return recipeUsecase.NewRecipeUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
