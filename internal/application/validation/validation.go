// Package validation evalúa las reglas declarativas por campo sobre el cuerpo
// crudo de la petición, antes de cualquier lógica de dominio. Acumula los
// mensajes de todos los campos inválidos en vez de cortar en el primero.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	alphaES    = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)
	alphanumES = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑüÜ\s]+$`)
	textES     = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑüÜ\s.,-]+$`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// Validator wrapper sobre go-playground/validator con las reglas propias de la
// aplicación: juegos de caracteres localizados, forma de ObjectID y montos con
// máximo dos decimales.
type Validator struct {
	v *validator.Validate
}

// New construye el validador y registra las reglas personalizadas.
func New() *Validator {
	v := validator.New()

	regex := func(re *regexp.Regexp) validator.Func {
		return func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		}
	}

	_ = v.RegisterValidation("alpha_es", regex(alphaES))
	_ = v.RegisterValidation("alphanum_es", regex(alphanumES))
	_ = v.RegisterValidation("text_es", regex(textES))
	_ = v.RegisterValidation("has_digit", regex(hasDigit))
	_ = v.RegisterValidation("has_lower", regex(hasLower))
	_ = v.RegisterValidation("has_upper", regex(hasUpper))
	_ = v.RegisterValidation("has_special", regex(hasSpecial))

	// Forma de id de documento: 24 caracteres hexadecimales.
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	})

	// Campos de moneda: máximo 2 decimales.
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d := decimal.NewFromFloat(fl.Field().Float())
		return d.Exponent() >= -2
	})

	return &Validator{v: v}
}

// Validate evalúa el struct y devuelve los mensajes de TODOS los campos
// inválidos; nil si el cuerpo es válido.
func (val *Validator) Validate(s interface{}) []string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid input data"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return msgs
}

// messageFor traduce un error de campo al mensaje público de la API.
func messageFor(fe validator.FieldError) string {
	key := normalizedStruct(fe.StructNamespace()) + "." + fe.StructField() + "." + fe.Tag()
	if msg, ok := messages[key]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.StructField())
}

// normalizedStruct devuelve el struct raíz del namespace sin el prefijo
// Create/Update, para compartir mensajes entre alta y edición.
func normalizedStruct(namespace string) string {
	name := namespace
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimPrefix(name, "Create")
	name = strings.TrimPrefix(name, "Update")
	return name
}

// Mensajes públicos por (struct normalizado, campo, regla).
var messages = map[string]string{
	// Registro de usuario
	"RegisterRequest.Name.required":        "First name is required",
	"RegisterRequest.Name.min":             "First name must be between 2 and 30 characters",
	"RegisterRequest.Name.max":             "First name must be between 2 and 30 characters",
	"RegisterRequest.Name.alpha_es":        "First name must contain only letters",
	"RegisterRequest.Email.required":       "Email is required",
	"RegisterRequest.Email.email":          "Please enter a valid email address",
	"RegisterRequest.Email.max":            "Email must not exceed 100 characters",
	"RegisterRequest.Password.required":    "Password is required",
	"RegisterRequest.Password.min":         "Password must be at least 8 characters long",
	"RegisterRequest.Password.has_digit":   "Password must contain at least one number",
	"RegisterRequest.Password.has_lower":   "Password must contain at least one lowercase letter",
	"RegisterRequest.Password.has_upper":   "Password must contain at least one uppercase letter",
	"RegisterRequest.Password.has_special": "Password must contain at least one special character",
	"RegisterRequest.BusinessName.max":     "Business name must not exceed 100 characters",

	// Login
	"LoginRequest.Email.required":    "Email is required",
	"LoginRequest.Email.email":       "Please enter a valid email address",
	"LoginRequest.Password.required": "Password is required",

	// Categorías
	"CategoryRequest.Name.required":       "Category name is required",
	"CategoryRequest.Name.min":            "Category name must be between 2 and 50 characters",
	"CategoryRequest.Name.max":            "Category name must be between 2 and 50 characters",
	"CategoryRequest.Name.alphanum_es":    "Category name must contain only letters, numbers, and spaces",
	"CategoryRequest.Description.max":     "Description must not exceed 200 characters",

	// Productos
	"ProductRequest.Name.required":        "Product name is required",
	"ProductRequest.Name.min":             "Product name must be between 2 and 100 characters",
	"ProductRequest.Name.max":             "Product name must be between 2 and 100 characters",
	"ProductRequest.CategoryID.objectid":  "Category ID must be a valid ID",
	"ProductRequest.ProviderID.objectid":  "Provider ID must be a valid ID",
	"ProductRequest.Stock.required":       "Stock is required",
	"ProductRequest.Stock.min":            "Stock must be a non-negative integer",
	"ProductRequest.Price.required":       "Price is required",
	"ProductRequest.Price.min":            "Price must be a non-negative number",
	"ProductRequest.Price.money":          "Price can have at most 2 decimal places",

	// Proveedores
	"ProviderRequest.Name.required":       "Provider name is required",
	"ProviderRequest.Name.min":            "Provider name must be between 2 and 100 characters",
	"ProviderRequest.Name.max":            "Provider name must be between 2 and 100 characters",
	"ProviderRequest.Contact.max":         "Contact must not exceed 100 characters",
	"ProviderRequest.Description.max":     "Description must not exceed 800 characters",
	"ProviderRequest.CategoryID.objectid": "Category ID must be a valid ID",

	// Notas
	"NoteRequest.Title.required":        "Note title is required",
	"NoteRequest.Title.min":             "Note title must be between 2 and 100 characters",
	"NoteRequest.Title.max":             "Note title must be between 2 and 100 characters",
	"NoteRequest.Title.text_es":         "Note title must contain only letters, numbers, spaces and common punctuation",
	"NoteRequest.Description.required":  "Note description is required",
	"NoteRequest.Description.min":       "Note description must be between 5 and 1000 characters",
	"NoteRequest.Description.max":       "Note description must be between 5 and 1000 characters",
	"NoteRequest.CategoryID.objectid":   "Category ID must be a valid ID",

	// Gastos
	"ExpenseRequest.Title.required":       "Expense title is required",
	"ExpenseRequest.Title.min":            "Expense title must be between 2 and 100 characters",
	"ExpenseRequest.Title.max":            "Expense title must be between 2 and 100 characters",
	"ExpenseRequest.Title.text_es":        "Expense title must contain only letters, numbers, spaces and common punctuation",
	"ExpenseRequest.Amount.required":      "Amount is required",
	"ExpenseRequest.Amount.min":           "Amount must be a non-negative number",
	"ExpenseRequest.Amount.money":         "Amount can have at most 2 decimal places",
	"ExpenseRequest.Description.max":      "Description must not exceed 1000 characters",
	"ExpenseRequest.CategoryID.objectid":  "Category ID must be a valid ID",
	"ExpenseRequest.ProviderID.objectid":  "Provider ID must be a valid ID",

	// Ventas
	"SaleRequest.Products.required":  "Products array is required and must contain at least one product",
	"SaleRequest.Products.min":       "Products array is required and must contain at least one product",
	"SaleRequest.ProductID.required": "Product ID is required",
	"SaleRequest.ProductID.objectid": "Product ID must be a valid ID",
	"SaleRequest.Quantity.required":  "Product quantity is required",
	"SaleRequest.Quantity.min":       "Product quantity must be a positive integer",
	"SaleRequest.Total.required":     "Total is required",
	"SaleRequest.Total.min":          "Total must be a non-negative number",
	"SaleRequest.Total.money":        "Total can have at most 2 decimal places",
}
