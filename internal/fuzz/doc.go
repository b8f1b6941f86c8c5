// Package fuzztests houses Go fuzz harnesses for the sable front end
// (source -> lexer -> parser with semantic actions). They check that
// arbitrary input never panics or hangs, and that accepted programs
// produce a well-formed tree.
//
// Назначение: прогонять байты через FileSet, лексер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
