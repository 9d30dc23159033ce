package command

// Command is one parsed invocation of the contact book.
type Command interface {
	isCommand()
}

// Add creates a new contact from an interactively collected draft.
type Add struct{}

// Remove deletes the contact with the given username, if present.
type Remove struct {
	Username string
}

// SearchByID looks up one contact by exact username.
type SearchByID struct {
	Username string
}

// SearchByName finds contacts whose first or last name equals Name.
type SearchByName struct {
	Name string
}

// SearchByEmail finds contacts by exact email.
type SearchByEmail struct {
	Email string
}

// SearchByNumber finds contacts by exact phone number.
type SearchByNumber struct {
	Number string
}

// List prints every contact in on-disk order.
type List struct{}

// Update applies field edits to an existing contact.
type Update struct {
	Username string
	Edits    []FieldEdit
}

// Help prints usage.
type Help struct{}

func (Add) isCommand()            {}
func (Remove) isCommand()         {}
func (SearchByID) isCommand()     {}
func (SearchByName) isCommand()   {}
func (SearchByEmail) isCommand()  {}
func (SearchByNumber) isCommand() {}
func (List) isCommand()           {}
func (Update) isCommand()         {}
func (Help) isCommand()           {}

// Parse maps a raw token sequence onto a Command. The first token selects
// the branch; arities are exact except for list, which ignores trailing
// tokens. Anything else parses as Help.
func Parse(tokens []string) Command {
	if len(tokens) == 0 {
		return Help{}
	}
	switch tokens[0] {
	case "add":
		if len(tokens) == 1 {
			return Add{}
		}
	case "remove":
		if len(tokens) == 2 {
			return Remove{Username: tokens[1]}
		}
	case "search":
		if len(tokens) == 3 {
			switch tokens[1] {
			case "id":
				return SearchByID{Username: tokens[2]}
			case "name":
				return SearchByName{Name: tokens[2]}
			case "email":
				return SearchByEmail{Email: tokens[2]}
			case "number":
				return SearchByNumber{Number: tokens[2]}
			}
		}
	case "list":
		return List{}
	case "update":
		if len(tokens) >= 2 {
			return Update{Username: tokens[1], Edits: ParseEdits(tokens[2:])}
		}
	}
	return Help{}
}
