// Package gridroute is a small toolkit for routing on 2D grids: shortest
// paths under pluggable step costs, the set of cells shared by all optimal
// routes, and the first obstacle that cuts a route off.
//
// What is in the box?
//
//	• vec2/      generic integer 2D vectors (Manhattan distance, compass directions)
//	• gridgraph/ maze and coordinate-list parsing, flood fill, text rendering
//	• gridpath/  priority-queue search with cost models (plain, turn penalty),
//	             optimal-cell enumeration, distance fields, threshold search
//	• racetrack/ shortcut ("cheat") counting over two distance fields
//	• puzzles/   drivers for the reindeer maze, falling bytes and race track
//	• config/    .env and environment settings for the CLI
//	• cmd/gridroute command-line entry point
//
// Quick example:
//
//	#####
//	#..E#      cost 1004 with a 1001 turn penalty:
//	#.#.#      two steps east, a turning step north, one more step north.
//	#S..#
//	#####
//
//	go run ./cmd/gridroute --day 16 --input maze.txt --show
package gridroute
