package names

type GetNameInput struct {
	Arena    string
	PlayerID string
}

type SetNameInput struct {
	Arena    string
	PlayerID string
	Name     string
}

type GetAllNamesInput struct {
	Arena string
}
