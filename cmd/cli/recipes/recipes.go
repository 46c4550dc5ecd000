package recipes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/crucial707/recipe-share/cmd/cli/config"
	"github.com/crucial707/recipe-share/cmd/cli/output"
	"github.com/spf13/cobra"
)

type recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	UserID       string   `json:"userId"`
}

// InitRecipes registers recipe commands on the root command.
func InitRecipes(rootCmd *cobra.Command) {
	recipesCmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse and share recipes",
	}

	recipesCmd.AddCommand(
		listRecipesCmd(),
		getRecipeCmd(),
		createRecipeCmd(),
	)

	rootCmd.AddCommand(recipesCmd)
}

// ==========================
// LIST
// ==========================
func listRecipesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := http.Get(config.APIURL() + "/recipes")
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				fmt.Println("API error:", string(body))
				return
			}

			var recipes []recipe
			if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
				fmt.Println("invalid response:", err)
				return
			}

			if asJSON {
				b, _ := json.MarshalIndent(recipes, "", "  ")
				fmt.Println(string(b))
				return
			}

			rows := make([][]interface{}, 0, len(recipes))
			for _, rec := range recipes {
				rows = append(rows, []interface{}{rec.ID, rec.Title, strings.Join(rec.Ingredients, ", ")})
			}
			output.RenderTable([]string{"ID", "Title", "Ingredients"}, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")

	return cmd
}

// ==========================
// GET
// ==========================
func getRecipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a recipe",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := http.Get(config.APIURL() + "/recipes/" + args[0])
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNotFound {
				fmt.Println("Recipe not found")
				return
			}
			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				fmt.Println("API error:", string(body))
				return
			}

			var rec recipe
			if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
				fmt.Println("invalid response:", err)
				return
			}

			fmt.Println(rec.Title)
			fmt.Println("Ingredients:")
			for _, ing := range rec.Ingredients {
				fmt.Println("  -", ing)
			}
			fmt.Println("Instructions:")
			fmt.Println(" ", rec.Instructions)
		},
	}
}

// ==========================
// CREATE
// ==========================
func createRecipeCmd() *cobra.Command {
	var title string
	var ingredients string
	var instructions string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recipe (requires login)",
		Run: func(cmd *cobra.Command, args []string) {
			token, err := config.LoadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			payload := map[string]string{
				"title":        title,
				"ingredients":  ingredients,
				"instructions": instructions,
			}
			body, _ := json.Marshal(payload)

			req, _ := http.NewRequest("POST", config.APIURL()+"/recipes", bytes.NewBuffer(body))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusUnauthorized {
				fmt.Println("Session expired, please login again")
				return
			}

			var out any
			json.NewDecoder(resp.Body).Decode(&out)
			b, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(b))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "recipe title")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "comma-separated ingredients")
	cmd.Flags().StringVar(&instructions, "instructions", "", "cooking instructions")

	return cmd
}
