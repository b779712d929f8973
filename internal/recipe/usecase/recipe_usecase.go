// Package usecase implements the recipe business logic and orchestrates recipe domain operations.
package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/allisson/recipes/internal/database"
	"github.com/allisson/recipes/internal/recipe/domain"
	appValidation "github.com/allisson/recipes/internal/validation"
)

// IngredientInput is one ingredient line in a recipe input
type IngredientInput struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Measurement string `json:"measurement"`
}

// RecipeInput contains the input data for recipe creation and update
type RecipeInput struct {
	AccountID   int64             `json:"account_id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Country     string            `json:"country"`
	Type        string            `json:"type"`
	Ingredients []IngredientInput `json:"ingredients"`
}

// UseCase defines the interface for recipe business logic operations
type UseCase interface {
	Create(ctx context.Context, input RecipeInput) (*domain.Recipe, error)
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	ListByAccount(ctx context.Context, accountID int64, offset, limit int) ([]*domain.Recipe, error)
	Update(ctx context.Context, id int64, input RecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id int64) error
}

// RecipeRepository interface defines recipe repository operations
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	ListByAccount(ctx context.Context, accountID int64, offset, limit int) ([]*domain.Recipe, error)
	Update(ctx context.Context, recipe *domain.Recipe) error
	Delete(ctx context.Context, id int64) error
	FindOwnerID(ctx context.Context, recipeID int64) (int64, error)
}

// RecipeUseCase handles recipe-related business logic
type RecipeUseCase struct {
	txManager  database.TxManager
	recipeRepo RecipeRepository
}

// NewRecipeUseCase creates a new RecipeUseCase
func NewRecipeUseCase(txManager database.TxManager, recipeRepo RecipeRepository) *RecipeUseCase {
	return &RecipeUseCase{
		txManager:  txManager,
		recipeRepo: recipeRepo,
	}
}

// validateRecipeInput validates recipe input using jellydator/validation
func (uc *RecipeUseCase) validateRecipeInput(input RecipeInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 64).Error("category must be between 1 and 64 characters"),
		),
		validation.Field(&input.Country,
			validation.Required.Error("country is required"),
			validation.Length(1, 64).Error("country must be between 1 and 64 characters"),
		),
		validation.Field(&input.Type,
			validation.Required.Error("type is required"),
			validation.Length(1, 64).Error("type must be between 1 and 64 characters"),
		),
		validation.Field(&input.Ingredients, validation.By(validateIngredients)),
	)
	return appValidation.WrapValidationError(err)
}

// validateIngredients checks every ingredient line has a name
func validateIngredients(value interface{}) error {
	ingredients, ok := value.([]IngredientInput)
	if !ok {
		return validation.NewError("validation_ingredients", "ingredients must be a list")
	}

	for _, ingredient := range ingredients {
		if ingredient.Name == "" {
			return validation.NewError("validation_ingredient_name", "ingredient name is required")
		}
	}

	return nil
}

func toDomainRecipe(input RecipeInput) *domain.Recipe {
	ingredients := make([]domain.Ingredient, 0, len(input.Ingredients))
	for _, ingredient := range input.Ingredients {
		ingredients = append(ingredients, domain.Ingredient{
			Name:        ingredient.Name,
			Amount:      ingredient.Amount,
			Measurement: ingredient.Measurement,
		})
	}

	return &domain.Recipe{
		AccountID:   input.AccountID,
		Name:        input.Name,
		Category:    input.Category,
		Country:     input.Country,
		Type:        input.Type,
		Ingredients: ingredients,
	}
}

// Create inserts a new recipe with its ingredients in one transaction
func (uc *RecipeUseCase) Create(ctx context.Context, input RecipeInput) (*domain.Recipe, error) {
	if err := uc.validateRecipeInput(input); err != nil {
		return nil, err
	}

	recipe := toDomainRecipe(input)

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.recipeRepo.Create(ctx, recipe)
	})
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

// GetByID retrieves a recipe by ID
func (uc *RecipeUseCase) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	return uc.recipeRepo.GetByID(ctx, id)
}

// ListByAccount retrieves an account's recipes with pagination
func (uc *RecipeUseCase) ListByAccount(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*domain.Recipe, error) {
	return uc.recipeRepo.ListByAccount(ctx, accountID, offset, limit)
}

// Update replaces a recipe's fields and ingredient list in one transaction.
// The owning account never changes on update.
func (uc *RecipeUseCase) Update(ctx context.Context, id int64, input RecipeInput) (*domain.Recipe, error) {
	if err := uc.validateRecipeInput(input); err != nil {
		return nil, err
	}

	existing, err := uc.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe := toDomainRecipe(input)
	recipe.ID = existing.ID
	recipe.AccountID = existing.AccountID
	recipe.CreatedAt = existing.CreatedAt

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.recipeRepo.Update(ctx, recipe)
	})
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

// Delete removes a recipe
func (uc *RecipeUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.recipeRepo.Delete(ctx, id)
	})
}
