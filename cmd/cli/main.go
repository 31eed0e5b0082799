package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"userblock/app/config"
	"userblock/app/database"
	puser "userblock/app/platform/user"
	"userblock/pkg/utils"
)

func openService() (*puser.UserService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	return puser.NewService(db, cfg.TokenSecret), nil
}

var rootCmd = &cobra.Command{
	Use:   "userblock",
	Short: "User account administration",
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var createAdmin bool

var userCreateCmd = &cobra.Command{
	Use:   "create <email>",
	Short: "Create a new user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		email := args[0]
		password := utils.GenerateRandomString(12)

		roles := []string{database.RoleUser}
		if createAdmin {
			roles = []string{database.RoleAdmin, database.RoleUser}
		}

		user, err := svc.Create(puser.CreateInput{
			Email:    email,
			Password: password,
			Roles:    roles,
			Actor:    "cli",
		})
		if err != nil {
			return err
		}

		fmt.Println("User ID  :", user.ID)
		fmt.Println("Email    :", user.Email)
		fmt.Println("Roles    :", []string(user.Roles))
		fmt.Println("Password :", password)
		return nil
	},
}

var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <user_id>",
	Short: "Reset user password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		userID := args[0]
		password := utils.GenerateRandomString(12)

		if err := svc.UpdatePassword(userID, password, "cli"); err != nil {
			return err
		}

		fmt.Println("User ID :", userID)
		fmt.Println("Password:", password)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		users, err := svc.Query(map[string]any{})
		if err != nil {
			return err
		}

		for _, user := range users {
			fmt.Printf("%s  %-30s %-10s %v\n", user.ID, user.Email, user.Status, []string(user.Roles))
		}
		return nil
	},
}

func main() {
	userCreateCmd.Flags().BoolVar(&createAdmin, "admin", false, "grant the admin role")

	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userResetPasswordCmd)
	userCmd.AddCommand(userListCmd)
	rootCmd.AddCommand(userCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
