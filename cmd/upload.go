/*
Copyright © 2025 Prakash1256
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Prakash1256/PDF-AI-CHAT/client"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a PDF to a running chat server",
	Long: `Uploads a PDF to the chat server and saves it into the local session
slot so a later "chat" run can restore it. A progress indicator is shown
while the upload runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		serverURL, _ := cmd.Flags().GetString("server")
		sessionPath, _ := cmd.Flags().GetString("session-file")

		if filePath == "" {
			log.Fatal("--file is required")
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		storage, err := client.NewFileStorage(sessionPath)
		if err != nil {
			log.Fatalf("Failed to open session storage: %v", err)
		}
		session := client.NewSessionStore(storage, client.NewObjectURLRegistry(0))

		coordinator := client.NewProgressCoordinator(client.DefaultProgressConfig())
		coordinator.Start()

		api := client.NewAPIClient(serverURL)
		resultChan := make(chan error, 1)
		go func() {
			res, err := api.Upload(context.Background(), filePath)
			if err != nil {
				resultChan <- err
				return
			}
			if err := session.Persist(data, filepath.Base(filePath)); err != nil {
				resultChan <- err
				return
			}
			fmt.Printf("\nExtracted %d pages\n", res.NumPages)
			resultChan <- nil
		}()

		var uploadErr error
		for update := range coordinator.Updates() {
			switch {
			case update.Navigate:
				if uploadErr != nil {
					log.Fatalf("Upload failed: %v", uploadErr)
				}
				fmt.Println("Document is ready, run \"pdf-ai-chat chat\" to ask questions")
				return
			case update.Phase == client.PhaseComplete:
				fmt.Printf("\rUploading... %d%%\n", update.Percent)
			case update.Phase == client.PhaseUploading:
				fmt.Printf("\rUploading... %d%%", update.Percent)
			}

			select {
			case err := <-resultChan:
				uploadErr = err
			default:
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringP("file", "f", "", "Path to the PDF to upload")
	uploadCmd.Flags().StringP("server", "s", "http://localhost:5000", "Base URL of the chat server")
	uploadCmd.Flags().String("session-file", defaultSessionPath(), "Path of the local session slot")
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pdf-ai-chat-session.json"
	}
	return filepath.Join(home, ".pdf-ai-chat-session.json")
}
