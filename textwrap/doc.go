/*
Package textwrap breaks plain text into lines of a requested width.

Break opportunities are found with a pair table over the ASCII subset of
the Unicode line breaking classes, and the actual line boundaries are
chosen with a dynamic program that minimizes the total raggedness of all
lines but the last of each paragraph. The result is noticeably more even
than greedy wrapping, which matters for the narrow description columns
of help output.

Only ASCII is classified; bytes outside the ASCII range are treated as
alphabetic.
*/
package textwrap
