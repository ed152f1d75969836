package validation

// Идентификатор в пути.
func idRule(field string, in Location, msgRequired string) Rule {
	return Rule{
		Field: field,
		In:    in,
		Checks: []Check{
			{Test: Required(), Message: msgRequired},
			{Test: Numeric(), Message: "El ID debe ser un número"},
			{Test: Positive(), Message: "El ID debe ser mayor que 0"},
			{Test: Integer(), Message: "El ID debe ser un número entero"},
		},
	}
}

var (
	productID = idRule("id", Params, "El ID del producto es obligatorio")
	userID    = idRule("id", Params, "El ID del usuario es obligatorio")

	productName = Rule{
		Field: "name",
		In:    Body,
		Trim:  true,
		Checks: []Check{
			{Test: Required(), Message: "El nombre es obligatorio"},
			{Test: Tag("min=3"), Message: "El nombre debe tener al menos 3 caracteres"},
			{Test: Tag("max=100"), Message: "El nombre no puede tener más de 100 caracteres"},
		},
	}

	productPrice = Rule{
		Field: "price",
		In:    Body,
		Checks: []Check{
			{Test: Required(), Message: "El precio es obligatorio"},
			{Test: Numeric(), Message: "El precio debe ser un número"},
			{Test: Positive(), Message: "El precio debe ser mayor que 0"},
			// Колонка price имеет тип NUMERIC(10, 2).
			{Test: MaxDecimals(2), Message: "El precio no puede tener más de 2 decimales"},
			{Test: Less("100000000"), Message: "El precio debe ser menor que 100000000"},
		},
	}
)

func usernameRule(field string) Rule {
	return Rule{
		Field: field,
		In:    Body,
		Checks: []Check{
			{Test: Required(), Message: "El nombre de usuario es obligatorio"},
			{Test: Tag("min=3"), Message: "El nombre de usuario debe tener al menos 3 caracteres"},
			{Test: Tag("max=100"), Message: "El nombre de usuario no puede tener más de 100 caracteres"},
		},
	}
}

func emailRule(field string) Rule {
	return Rule{
		Field: field,
		In:    Body,
		Checks: []Check{
			{Test: Required(), Message: "El correo electrónico es obligatorio"},
			{Test: Tag("email"), Message: "El correo electrónico no es válido"},
		},
	}
}

func roleRule(field string) Rule {
	return Rule{
		Field: field,
		In:    Body,
		Checks: []Check{
			{Test: Required(), Message: "El rol es obligatorio"},
			{Test: Tag("oneof=admin user"), Message: "El rol debe ser 'admin' o 'user'"},
		},
	}
}

var userPassword = Rule{
	Field: "password",
	In:    Body,
	Checks: []Check{
		{Test: Required(), Message: "La contraseña es obligatoria"},
		{Test: Tag("min=6"), Message: "La contraseña debe tener al menos 6 caracteres"},
		{Test: Tag("max=100"), Message: "La contraseña no puede tener más de 100 caracteres"},
	},
}

var userBodyID = Rule{
	Field:    "id",
	In:       Body,
	Optional: true,
	Checks: []Check{
		{Test: EqualsParam("id"), Message: "El ID del usuario debe coincidir con el ID en la URL"},
	},
}

// Таблицы правил маршрутов.
var (
	ProductIDRules     = []Rule{productID}
	ProductCreateRules = []Rule{productName, productPrice}
	ProductUpdateRules = []Rule{productID, productName, productPrice}

	UserIDRules     = []Rule{userID}
	UserCreateRules = []Rule{usernameRule("username"), emailRule("email"), userPassword, roleRule("role")}
	UserUpdateRules = []Rule{userID, userBodyID, usernameRule("username_V"), emailRule("email_V"), roleRule("role_V")}
)
