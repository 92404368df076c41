package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RemoveCmd deletes a record's head, body and Markdown source after a
// confirmation prompt.
type RemoveCmd struct {
	ID   int  `arg:"" help:"Record id."`
	Page bool `help:"Remove a page instead of a post."`
	Yes  bool `short:"y" help:"Skip the confirmation prompt."`
}

func (r *RemoveCmd) Run(_ *Global, root *CLI) error {
	st := root.store()
	k := kindOf(r.Page)

	h, err := st.ReadHead(k, r.ID)
	if err != nil {
		return err
	}
	if !r.Yes {
		fmt.Printf("remove %s %d %q? [y/N] ", k, r.ID, h.Title)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Println("kept")
			return nil
		}
	}
	if err := st.Remove(k, r.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s %d\n", k, r.ID)
	return nil
}
