// Copyright (c) 2025 The persona-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/adxsh/persona-tui/internal/export"
	"github.com/adxsh/persona-tui/internal/model"
	"github.com/adxsh/persona-tui/internal/persona"
	"github.com/adxsh/persona-tui/internal/storage"
	"github.com/adxsh/persona-tui/internal/util"
)

// openStores builds the user and chat stores honoring a --data-dir override.
func openStores(args Args) (*storage.UserStore, *storage.ChatStore, error) {
	if args.DataDir != "" {
		users, err := storage.NewUserStoreWithDir(args.DataDir)
		if err != nil {
			return nil, nil, err
		}
		chats, err := storage.NewChatStoreWithDir(args.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return users, chats, nil
	}

	users, err := storage.NewUserStore()
	if err != nil {
		return nil, nil, err
	}
	chats, err := storage.NewChatStore()
	if err != nil {
		return nil, nil, err
	}
	return users, chats, nil
}

// HandleUsers lists registered profiles.
func HandleUsers(args Args) error {
	users, _, err := openStores(args)
	if err != nil {
		return err
	}

	all, err := users.Users()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if len(all) == 0 {
		fmt.Println("No registered profiles.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	// Pad by display width so CJK names keep the columns aligned.
	fmt.Printf("%s %s %-5s %s\n", util.PadRight("UNIQUE ID", 16), util.PadRight("NAME", 20), "AGE", "GENDER")
	for _, id := range ids {
		u := all[id]
		fmt.Printf("%s %s %-5d %s\n", util.PadRight(u.UniqueID, 16), util.PadRight(u.Name, 20), u.Age, u.Gender)
	}
	return nil
}

// HandlePersonas lists the available personas.
func HandlePersonas(_ Args) error {
	for _, p := range persona.List() {
		fmt.Printf("%s %-12s %s\n", persona.IconFor(p.Icon), p.Name, p.Description)
	}
	return nil
}

// HandleExport writes a conversation transcript to stdout or the --output
// file in the requested format.
func HandleExport(args Args) error {
	if args.UserID == "" || args.PersonaID == "" {
		return fmt.Errorf("usage: persona-tui export <user> <persona> [--format md|json|txt] [--output FILE]")
	}
	p, err := persona.ByID(persona.ID(args.PersonaID))
	if err != nil {
		return err
	}

	exporter, err := export.ForFormat(args.Format, nil)
	if err != nil {
		return err
	}

	_, chats, err := openStores(args)
	if err != nil {
		return err
	}

	msgs, err := chats.Conversation(args.UserID, args.PersonaID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if len(msgs) == 0 {
		return fmt.Errorf("no conversation found for %s with %s", args.UserID, args.PersonaID)
	}

	doc, err := exporter.Export(&export.Transcript{
		UserID:      args.UserID,
		PersonaID:   args.PersonaID,
		PersonaName: p.Name,
		Messages:    msgs,
	})
	if err != nil {
		return err
	}

	if args.Output == "" {
		fmt.Print(string(doc))
		return nil
	}
	if err := os.WriteFile(args.Output, doc, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", args.Output, err)
	}
	fmt.Printf("Exported %d messages to %s\n", len(msgs), args.Output)
	return nil
}

// HandleDelete removes a stored conversation.
func HandleDelete(args Args) error {
	if args.UserID == "" || args.PersonaID == "" {
		return fmt.Errorf("usage: persona-tui delete <user> <persona>")
	}
	if _, err := persona.ByID(persona.ID(args.PersonaID)); err != nil {
		return err
	}

	_, chats, err := openStores(args)
	if err != nil {
		return err
	}

	msgs, err := chats.Conversation(args.UserID, args.PersonaID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if len(msgs) == 0 {
		fmt.Printf("No conversation stored for %s with %s.\n", args.UserID, args.PersonaID)
		return nil
	}

	conv := model.Conversation{UserID: args.UserID, PersonaID: args.PersonaID, Messages: msgs}
	if err := chats.DeleteConversation(args.UserID, args.PersonaID); err != nil {
		return err
	}
	last, _ := conv.Last()
	fmt.Printf("Deleted %d messages (last active %s: %q)\n",
		conv.Len(), conv.UpdatedAt().Format("2006-01-02 15:04"), last.Preview(48))
	return nil
}
