package db_test

import (
	"strings"
	"testing"

	"recipe_hub/internal/config"
	"recipe_hub/internal/db"
	"recipe_hub/internal/domain"
	"recipe_hub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const hamInstructions = "Or kind rest bred with am shed then. In raptures building an bringing be. " +
	"Elderly is detract tedious assured private so to visited."

func newUser(t *testing.T, name string) *domain.User {
	t.Helper()
	u := &domain.User{Username: name}
	require.NoError(t, u.SetPassword("testpassword"))
	return u
}

func TestOpenUnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := db.Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestUserPersistsPasswordHash(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	require.NoError(t, gdb.Create(newUser(t, "ChefHam")).Error)

	var loaded domain.User
	require.NoError(t, gdb.Where("username = ?", "ChefHam").First(&loaded).Error)
	assert.True(t, loaded.Authenticate("testpassword"))
	assert.False(t, loaded.Authenticate("nope"))
}

func TestUsernameUnique(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	require.NoError(t, gdb.Create(newUser(t, "dup")).Error)
	err := gdb.Create(newUser(t, "dup")).Error
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKey(err), "got %v", err)

	var count int64
	require.NoError(t, gdb.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserHookRejectsBlankUsername(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	err := gdb.Create(newUser(t, "   ")).Error
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserHookRejectsMissingPassword(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	err := gdb.Create(&domain.User{Username: "nopw"}).Error
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecipeCreate(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	user := newUser(t, "ChefHam")
	require.NoError(t, gdb.Create(user).Error)

	minutes := 60
	recipe := &domain.Recipe{
		Title:             "Delicious Shed Ham",
		Instructions:      hamInstructions,
		MinutesToComplete: &minutes,
		UserID:            user.ID,
	}
	require.NoError(t, gdb.Create(recipe).Error)

	var loaded domain.Recipe
	require.NoError(t, gdb.Preload("User").Where("title = ?", "Delicious Shed Ham").First(&loaded).Error)
	assert.True(t, strings.HasPrefix(loaded.Instructions, "Or kind rest bred"))
	require.NotNil(t, loaded.MinutesToComplete)
	assert.Equal(t, 60, *loaded.MinutesToComplete)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "ChefHam", loaded.User.Username)
}

func TestRecipeHookRejectsInvalid(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	user := newUser(t, "ChefHam")
	require.NoError(t, gdb.Create(user).Error)

	tests := []struct {
		name   string
		recipe domain.Recipe
	}{
		{name: "no title", recipe: domain.Recipe{Instructions: strings.Repeat("x", 60), UserID: user.ID}},
		{name: "short instructions", recipe: domain.Recipe{Title: "Generic Ham", Instructions: "idk lol", UserID: user.ID}},
	}
	for _, tc := range tests {
		err := gdb.Create(&tc.recipe).Error
		require.ErrorIs(t, err, domain.ErrValidation, tc.name)
	}

	var count int64
	require.NoError(t, gdb.Model(&domain.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecipeRequiresExistingUser(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	err := gdb.Create(&domain.Recipe{Title: "Orphan", Instructions: strings.Repeat("x", 60), UserID: 999}).Error
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&domain.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserHasManyRecipes(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	user := newUser(t, "Prabhdip")
	user.Recipes = []domain.Recipe{
		{Title: "Delicious Shed Ham", Instructions: hamInstructions},
		{Title: "Hasty Party Ham", Instructions: "As am hastily invited settled at limited civilly fortune me."},
	}
	require.NoError(t, gdb.Create(user).Error)

	assert.NotZero(t, user.ID)
	for _, r := range user.Recipes {
		assert.NotZero(t, r.ID)
		assert.Equal(t, user.ID, r.UserID)
	}

	var loaded domain.User
	require.NoError(t, gdb.Preload("Recipes").First(&loaded, user.ID).Error)
	assert.Len(t, loaded.Recipes, 2)
}

func TestTransactionRollsBack(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newUser(t, "first")).Error; err != nil {
			return err
		}
		return tx.Create(&domain.Recipe{Title: "", Instructions: "short", UserID: 1}).Error
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	var count int64
	require.NoError(t, gdb.Model(&domain.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPing(t *testing.T) {
	t.Parallel()
	assert.NoError(t, db.Ping(testutil.NewDB(t)))
}
