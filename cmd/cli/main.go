package main

import (
	"fmt"
	"os"

	"github.com/crucial707/recipe-share/cmd/cli/auth"
	"github.com/crucial707/recipe-share/cmd/cli/recipes"
	"github.com/crucial707/recipe-share/cmd/cli/root"
)

func main() {
	rootCmd := root.GetRoot()
	auth.InitAuth(rootCmd)
	recipes.InitRecipes(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
