package sqlite_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kspala/recipeclip"
	"github.com/kspala/recipeclip/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkRecipeInserts measures single-recipe insert throughput against a
// file-backed database, which is the write pattern of a batch import.
func BenchmarkRecipeInserts(b *testing.B) {
	tmpDir := b.TempDir()
	dbPath := filepath.Join(tmpDir, "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	defer func() {
		db.Close()
		// Clean up WAL files if they exist
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	svc := sqlite.NewRecipeService(db)
	ctx := b.Context()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		recipe := benchRecipe(i)
		if err := svc.CreateRecipe(ctx, recipe); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBatchImport measures inserting a batch of recipes into a fresh
// database, simulating a full import run.
func BenchmarkBatchImport(b *testing.B) {
	const recipesPerImport = 100

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		tmpDir := b.TempDir()
		dbPath := filepath.Join(tmpDir, fmt.Sprintf("bench%d.db", i))

		db := sqlite.NewDB(dbPath)
		require.NoError(b, db.Open())

		svc := sqlite.NewRecipeService(db)
		ctx := b.Context()

		b.StartTimer()

		for j := 0; j < recipesPerImport; j++ {
			if err := svc.CreateRecipe(ctx, benchRecipe(j)); err != nil {
				b.Fatal(err)
			}
		}

		b.StopTimer()
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}
}

func benchRecipe(i int) *recipeclip.Recipe {
	r := recipeclip.NewRecipe()
	r.Name = fmt.Sprintf("Recipe %d", i)
	r.Category = "Benchmark"
	r.SourceURL = fmt.Sprintf("https://example.com/recipes/%d", i)
	r.PrepTime = "PT00H15M00S"
	r.CookTime = "PT01H00M00S"
	r.Yield = 4
	r.Ingredients = []string{
		"2 cups vegetable broth",
		"1/2 cup diced carrots",
		"1 tbsp olive oil",
		"salt to taste",
	}
	r.Instructions = []string{
		"Heat the oil in a large pot.",
		"Add the carrots and cook until soft.",
		"Pour in the broth and simmer.",
	}
	return r
}
