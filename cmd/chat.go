/*
Copyright © 2025 Prakash1256
*/
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Prakash1256/PDF-AI-CHAT/client"
	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask questions about the uploaded PDF",
	Long: `Restores the document from the local session slot and starts an
interactive question loop against the chat server. Questions are answered one
at a time, in order. Type "/close" to clear the session and return to a clean
upload state, or "exit" to leave the session intact.`,
	Run: func(cmd *cobra.Command, args []string) {
		serverURL, _ := cmd.Flags().GetString("server")
		sessionPath, _ := cmd.Flags().GetString("session-file")

		storage, err := client.NewFileStorage(sessionPath)
		if err != nil {
			log.Fatalf("Failed to open session storage: %v", err)
		}
		session := client.NewSessionStore(storage, client.NewObjectURLRegistry(0))

		doc, ok := session.Restore()
		if !ok {
			fmt.Println("No PDF found. Upload one first with \"pdf-ai-chat upload\".")
			return
		}
		fmt.Printf("Your document %q is ready! Ask a question:\n", doc.Name)

		api := client.NewAPIClient(serverURL)
		var conversation []types.ChatTurn

		// One outstanding question at a time: the loop blocks on each answer,
		// so turns are appended in strict request order.
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return
			}

			question := strings.TrimSpace(scanner.Text())
			switch question {
			case "":
				continue
			case "exit":
				return
			case "/close":
				session.Clear()
				fmt.Println("Session cleared.")
				return
			}

			conversation = append(conversation, types.ChatTurn{
				Text:      question,
				Role:      types.RoleUser,
				Timestamp: time.Now(),
			})

			res, err := api.Chat(context.Background(), question)
			answer := ""
			if err != nil {
				answer = "Sorry, I encountered an error while processing your question. Please try again."
				log.Printf("Chat request failed: %v", err)
			} else {
				answer = res.Answer
			}

			conversation = append(conversation, types.ChatTurn{
				Text:      answer,
				Role:      types.RoleBot,
				Timestamp: time.Now(),
			})
			fmt.Println(answer)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("server", "s", "http://localhost:5000", "Base URL of the chat server")
	chatCmd.Flags().String("session-file", defaultSessionPath(), "Path of the local session slot")
}
