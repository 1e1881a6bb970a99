package user

import "norms-hub/internal/area"

// DemoSeed returns the audit profiles used when no real users exist.
func DemoSeed() []User {
	return []User{
		{
			ID:    "demo-admin",
			Name:  "Administrador Demo",
			Email: "admin@retail.com.ar",
			Role:  RoleAdmin,
			Area:  area.General,
		},
		{
			ID:    "demo-editor",
			Name:  "Editor de Contenidos",
			Email: "editor@retail.com.ar",
			Role:  RoleEditor,
			Area:  "Sistemas",
		},
		{
			ID:    "demo-user",
			Name:  "Colaborador Tienda",
			Email: "user@retail.com.ar",
			Role:  RoleUser,
			Area:  "Operaciones",
		},
	}
}
