package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

func main() {
	// 1. Misma ruta que carga la app. Si tu .env apunta a otro archivo,
	// copia y pega esa ruta aquí.
	credPath := "credentials.json"
	if v := os.Getenv("GOOGLE_CREDENTIALS_FILE"); v != "" {
		credPath = v
	}

	fmt.Println("🔍 DIAGNÓSTICO DE CREDENCIALES DE GOOGLE")
	fmt.Println("----------------------------------------")
	fmt.Printf("📂 Intentando leer: %s\n", credPath)

	// 2. Intentar leer el archivo (File System Check)
	data, err := os.ReadFile(credPath)
	if err != nil {
		fmt.Println("\n❌ ERROR DE ARCHIVO:")
		fmt.Printf("   Go no puede encontrar o abrir el archivo.\n")
		fmt.Printf("   Detalle técnico: %v\n", err)
		return
	}
	fmt.Printf("✅ Archivo encontrado. Tamaño: %d bytes\n", len(data))

	// 3. Intentar armar credenciales (Format Check)
	fmt.Println("\n🔐 Intentando interpretar el JSON de la cuenta de servicio...")
	if _, err := google.CredentialsFromJSON(context.Background(), data, sheets.SpreadsheetsScope); err != nil {
		fmt.Println("\n❌ ERROR DE FORMATO:")
		fmt.Printf("   El archivo existe pero no es un JSON de cuenta de servicio válido.\n")
		fmt.Printf("   Detalle técnico: %v\n", err)
		return
	}

	var sa struct {
		ClientEmail string `json:"client_email"`
	}
	_ = json.Unmarshal(data, &sa)

	fmt.Println("\n✨ ¡ÉXITO! Las credenciales cargan bien.")
	fmt.Printf("   Comparte la hoja de cálculo y la carpeta de Drive con: %s\n", sa.ClientEmail)
	fmt.Println("   Si la API sigue fallando, el problema es el permiso de la hoja, no este archivo.")
}
