package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// component é um executável do projeto.
type component struct {
	Name    string
	Dir     string
	Output  string
	Ldflags string
}

func main() {
	outDir := flag.String("out", "bin", "Diretório de saída dos executáveis")
	static := flag.Bool("static", runtime.GOOS == "windows", "Linkar estaticamente")
	wait := flag.Bool("wait", runtime.GOOS == "windows", "Aguardar Enter antes de sair")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║       DeskScene Native Builder       ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	// 1. Configurar Ambiente
	setupEnvironment()

	// 2. Compilar componentes (ambos usam CGO: raylib e sqlite)
	for i, c := range components(*outDir, *static) {
		fmt.Printf(ColorYellow+"\n[%d/2] "+ColorReset, i+1)
		if err := buildComponent(c); err != nil {
			fatal(err, *wait)
		}
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Println(ColorYellow + "Dica: Execute o 'visualizador' com -scene desk ou -file cena.yaml." + ColorReset)

	if *wait {
		fmt.Println("\nPressione Enter para sair...")
		fmt.Scanln()
	}
}

func components(outDir string, static bool) []component {
	ldflags := "-s -w"
	if static {
		ldflags = "-extldflags=-static " + ldflags
	}
	guiFlags := ldflags
	if runtime.GOOS == "windows" {
		guiFlags += " -H=windowsgui"
	}

	return []component{
		{Name: "VISUALIZADOR (CGO + GUI)", Dir: "visualizador", Output: exeName(outDir, "visualizador"), Ldflags: guiFlags},
		{Name: "CENATOOL (CGO)", Dir: "cenatool", Output: exeName(outDir, "cenatool"), Ldflags: ldflags},
	}
}

func exeName(dir, name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(dir, name)
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0/2] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
	os.Setenv("CGO_ENABLED", "1")
}

func buildComponent(c component) error {
	fmt.Printf(ColorYellow+"Compilando %s..."+ColorReset+"\n", c.Name)

	args := []string{"build", "-ldflags", c.Ldflags, "-o", c.Output, "./" + c.Dir}
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %v", c.Name, err)
	}

	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", c.Name, c.Output)
	return nil
}

func fatal(err error, wait bool) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	if wait {
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
	}
	os.Exit(1)
}
